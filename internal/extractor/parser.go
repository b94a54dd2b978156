package extractor

import (
	"math"
	"strconv"
	"strings"
)

// registrationNames are the callees accepted as a loader configuration call.
var registrationNames = map[string]struct{}{
	"require.config":   {},
	"requirejs.config": {},
}

// maxDepth bounds the nesting of arrays and objects.
const maxDepth = 256

type parser struct {
	src   []byte
	lex   *lexer
	tok   token
	depth int
}

// Parse checks that src is exactly one registration call with a single
// object literal argument and returns that literal as a value tree of
// map[string]any, []any, string, float64, bool and nil. Nothing in src is
// ever evaluated.
func Parse(src []byte) (map[string]any, error) {
	p := &parser{src: src, lex: newLexer(src)}
	return p.parseProgram()
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) is(punct string) bool {
	return p.tok.kind == tokPunct && p.tok.text == punct
}

func (p *parser) errorf(kind error, format string, args ...any) error {
	return newSyntaxError(p.src, p.tok.pos, kind, format, args...)
}

func (p *parser) unexpected(want string) error {
	return p.errorf(ErrUnexpectedToken, "unexpected %s, expected %s", p.tok.describe(), want)
}

func (p *parser) skipSemicolons() error {
	for p.is(";") {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseProgram() (map[string]any, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.skipSemicolons(); err != nil {
		return nil, err
	}

	callee, err := p.parseCallee()
	if err != nil {
		return nil, err
	}

	if !p.is("(") {
		return nil, p.unexpected("`(`")
	}
	callPos := p.tok.pos
	if err = p.advance(); err != nil {
		return nil, err
	}

	arg, err := p.parseArguments(callPos)
	if err != nil {
		return nil, err
	}

	if err = p.skipSemicolons(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf(ErrExtraStatement, "unexpected %s after %s(...)", p.tok.describe(), callee)
	}

	return arg, nil
}

// parseCallee reads a dotted member expression and checks it against
// registrationNames.
func (p *parser) parseCallee() (string, error) {
	start := p.tok.pos
	if p.tok.kind != tokIdent {
		return "", p.errorf(ErrNoRegistrationCall, "expected require.config(...), found %s", p.tok.describe())
	}

	parts := []string{p.tok.text}
	if err := p.advance(); err != nil {
		return "", err
	}

	for {
		if p.is("[") {
			return "", p.errorf(ErrNotLiteral, "computed member access is not allowed")
		}
		if !p.is(".") {
			break
		}
		if err := p.advance(); err != nil {
			return "", err
		}
		if p.tok.kind != tokIdent {
			return "", p.unexpected("property name")
		}
		parts = append(parts, p.tok.text)
		if err := p.advance(); err != nil {
			return "", err
		}
	}

	callee := strings.Join(parts, ".")
	if _, ok := registrationNames[callee]; !ok {
		return "", newSyntaxError(p.src, start, ErrNoRegistrationCall, "unknown call %q", callee)
	}
	return callee, nil
}

// parseArguments reads the argument list after "(" up to and including ")".
func (p *parser) parseArguments(callPos int) (map[string]any, error) {
	if p.is(")") {
		return nil, newSyntaxError(p.src, callPos, ErrInvalidArgument, "registration call has no arguments")
	}

	argPos := p.tok.pos
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, newSyntaxError(p.src, argPos, ErrInvalidArgument, "argument must be an object literal")
	}

	if p.is(",") {
		if err = p.advance(); err != nil {
			return nil, err
		}
		if !p.is(")") {
			return nil, p.errorf(ErrInvalidArgument, "registration call takes exactly one argument")
		}
	}

	if !p.is(")") {
		return nil, p.afterValue("`)`")
	}
	if err = p.advance(); err != nil {
		return nil, err
	}

	return obj, nil
}

// afterValue reports a bad token following a complete value. Operators and
// call or member syntax mean the value was part of a larger expression.
func (p *parser) afterValue(want string) error {
	if p.tok.kind == tokPunct {
		switch p.tok.text {
		case "+", "-", ".", "(", "[":
			return p.errorf(ErrNotLiteral, "expressions are not allowed, found %s", p.tok.describe())
		}
	}
	return p.unexpected(want)
}

func (p *parser) parseValue() (any, error) {
	switch p.tok.kind {
	case tokString:
		v := p.tok.value
		return v, p.advance()

	case tokNumber:
		v, err := p.number(p.tok, false)
		if err != nil {
			return nil, err
		}
		return v, p.advance()

	case tokIdent:
		var v any
		switch p.tok.text {
		case "true":
			v = true
		case "false":
			v = false
		case "null":
			v = nil
		case "function", "class", "new", "async":
			return nil, p.errorf(ErrNotLiteral, "%s expressions are not allowed", p.tok.text)
		default:
			return nil, p.errorf(ErrNotLiteral, "identifier %q is not a literal", p.tok.text)
		}
		return v, p.advance()

	case tokPunct:
		switch p.tok.text {
		case "{":
			return p.parseObject()
		case "[":
			return p.parseArray()
		case "-", "+":
			return p.parseSigned()
		}
	}

	if p.tok.kind == tokEOF {
		return nil, p.unexpected("a value")
	}
	return nil, p.errorf(ErrNotLiteral, "unexpected %s, expected a literal value", p.tok.describe())
}

func (p *parser) parseSigned() (any, error) {
	negative := p.tok.text == "-"
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokNumber {
		return nil, p.errorf(ErrNotLiteral, "unary operator applied to %s", p.tok.describe())
	}

	v, err := p.number(p.tok, negative)
	if err != nil {
		return nil, err
	}
	return v, p.advance()
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return p.errorf(ErrUnexpectedToken, "nesting deeper than %d levels", maxDepth)
	}
	return nil
}

func (p *parser) parseArray() (any, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if err := p.advance(); err != nil {
		return nil, err
	}

	out := make([]any, 0)
	for !p.is("]") {
		if p.is(",") {
			return nil, p.errorf(ErrUnexpectedToken, "array holes are not allowed")
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		if p.is(",") {
			if err = p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if !p.is("]") {
			return nil, p.afterValue("`,` or `]`")
		}
	}

	return out, p.advance()
}

func (p *parser) parseObject() (any, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if err := p.advance(); err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for !p.is("}") {
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}

		if !p.is(":") {
			if p.is("(") || p.is(",") || p.is("}") {
				return nil, p.errorf(ErrNotLiteral, "shorthand properties and methods are not allowed")
			}
			return nil, p.unexpected("`:`")
		}
		if err = p.advance(); err != nil {
			return nil, err
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// duplicate keys: the last one wins, as in JavaScript
		out[key] = v

		if p.is(",") {
			if err = p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		if !p.is("}") {
			return nil, p.afterValue("`,` or `}`")
		}
	}

	return out, p.advance()
}

func (p *parser) parseKey() (string, error) {
	tok := p.tok
	switch tok.kind {
	case tokIdent:
		return tok.text, p.advance()
	case tokString:
		return tok.value, p.advance()
	case tokNumber:
		v, err := p.number(tok, false)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'f', -1, 64), p.advance()
	}

	if p.is("[") {
		return "", p.errorf(ErrNotLiteral, "computed property names are not allowed")
	}
	return "", p.unexpected("property name")
}

func (p *parser) number(tok token, negative bool) (float64, error) {
	text := tok.text
	var (
		v   float64
		err error
	)

	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] | 0x20 {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			var u uint64
			u, err = strconv.ParseUint(text[2:], base, 64)
			v = float64(u)
		} else {
			v, err = strconv.ParseFloat(text, 64)
		}
	} else {
		v, err = strconv.ParseFloat(text, 64)
	}

	if err != nil || math.IsInf(v, 0) {
		return 0, newSyntaxError(p.src, tok.pos, ErrUnexpectedToken, "number %s out of range", quoteShort(text))
	}
	if negative {
		v = -v
	}
	return v, nil
}
