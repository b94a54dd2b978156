package extractor

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokNumber:
		return "number"
	default:
		return "punctuator"
	}
}

type token struct {
	kind tokenKind
	// text is the raw source text of the token.
	text string
	// value is the decoded value of a string token.
	value string
	pos   int
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return t.kind.String()
	}
	return t.kind.String() + " " + quoteShort(t.text)
}

func quoteShort(s string) string {
	const max = 24
	if len(s) > max {
		s = s[:max] + "..."
	}
	return "`" + s + "`"
}

// lexer splits a snippet into the tokens of the literal grammar. It knows
// nothing of JavaScript beyond literals, identifiers, comments and the
// punctuators listed in punctuators.
type lexer struct {
	src []byte
	pos int
}

const punctuators = "{}[](),:;.+-"

func newLexer(src []byte) *lexer {
	return &lexer{src: src}
}

func (l *lexer) errorf(off int, kind error, format string, args ...any) error {
	return newSyntaxError(l.src, off, kind, format, args...)
}

func (l *lexer) peekRune(off int) (rune, int) {
	if off >= len(l.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(l.src[off:])
}

func (l *lexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}

	start := l.pos
	if start >= len(l.src) {
		return token{kind: tokEOF, pos: start}, nil
	}

	c := l.src[start]
	switch {
	case c == '"' || c == '\'':
		return l.scanString(c)
	case isDigit(c) || (c == '.' && start+1 < len(l.src) && isDigit(l.src[start+1])):
		return l.scanNumber()
	case strings.IndexByte(punctuators, c) >= 0:
		l.pos++
		return token{kind: tokPunct, text: string(c), pos: start}, nil
	case c == '`':
		return token{}, l.errorf(start, ErrNotLiteral, "template literals are not allowed")
	case c == '/':
		return token{}, l.errorf(start, ErrNotLiteral, "regular expressions and operators are not allowed")
	}

	r, _ := l.peekRune(start)
	if isIdentStart(r) {
		return l.scanIdent(), nil
	}

	return token{}, l.errorf(start, ErrUnexpectedToken, "unexpected character %q", r)
}

func (l *lexer) skipSpaceAndComments() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			end := indexLineTerminator(l.src[l.pos:])
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end
			}
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			end := strings.Index(string(l.src[l.pos+2:]), "*/")
			if end < 0 {
				return l.errorf(l.pos, ErrUnexpectedToken, "unterminated block comment")
			}
			l.pos += end + 4
		case c < utf8.RuneSelf:
			if c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '\v' && c != '\f' {
				return nil
			}
			l.pos++
		default:
			r, size := l.peekRune(l.pos)
			if !unicode.IsSpace(r) && r != '\uFEFF' {
				return nil
			}
			l.pos += size
		}
	}
	return nil
}

func (l *lexer) scanIdent() token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := l.peekRune(l.pos)
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}
	text := string(l.src[start:l.pos])
	return token{kind: tokIdent, text: text, value: text, pos: start}
}

func (l *lexer) scanNumber() (token, error) {
	start := l.pos

	if l.src[l.pos] == '0' && l.pos+1 < len(l.src) {
		var valid func(byte) bool
		switch l.src[l.pos+1] | 0x20 {
		case 'x':
			valid = isHexDigit
		case 'o':
			valid = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'b':
			valid = func(b byte) bool { return b == '0' || b == '1' }
		}
		if valid != nil {
			l.pos += 2
			digits := l.pos
			for l.pos < len(l.src) && valid(l.src[l.pos]) {
				l.pos++
			}
			if l.pos == digits {
				return token{}, l.errorf(start, ErrUnexpectedToken, "malformed number %s", quoteShort(string(l.src[start:l.pos])))
			}
			return l.finishNumber(start)
		}
	}

	l.skipDigits()
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		l.skipDigits()
	}
	if l.pos < len(l.src) && (l.src[l.pos]|0x20) == 'e' {
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		digits := l.pos
		l.skipDigits()
		if l.pos == digits {
			return token{}, l.errorf(start, ErrUnexpectedToken, "malformed exponent in %s", quoteShort(string(l.src[start:l.pos])))
		}
	}

	return l.finishNumber(start)
}

func (l *lexer) finishNumber(start int) (token, error) {
	if r, _ := l.peekRune(l.pos); isIdentStart(r) || (r >= '0' && r <= '9') {
		return token{}, l.errorf(l.pos, ErrUnexpectedToken, "identifier starts immediately after number")
	}
	return token{kind: tokNumber, text: string(l.src[start:l.pos]), pos: start}, nil
}

func (l *lexer) skipDigits() {
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
}

func (l *lexer) scanString(quote byte) (token, error) {
	start := l.pos
	l.pos++

	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return token{}, l.errorf(start, ErrUnexpectedToken, "unterminated string")
		}

		c := l.src[l.pos]
		switch {
		case c == quote:
			l.pos++
			return token{kind: tokString, text: string(l.src[start:l.pos]), value: b.String(), pos: start}, nil
		case c == '\n' || c == '\r':
			return token{}, l.errorf(start, ErrUnexpectedToken, "unterminated string")
		case c == '\\':
			if err := l.scanEscape(&b); err != nil {
				return token{}, err
			}
		default:
			r, size := l.peekRune(l.pos)
			b.WriteRune(r)
			l.pos += size
		}
	}
}

// scanEscape decodes the escape sequence at l.pos (pointing at the
// backslash) into b.
func (l *lexer) scanEscape(b *strings.Builder) error {
	start := l.pos
	l.pos++
	if l.pos >= len(l.src) {
		return l.errorf(start, ErrUnexpectedToken, "unterminated string")
	}

	c := l.src[l.pos]
	l.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			return l.errorf(start, ErrUnexpectedToken, "octal escape sequences are not allowed")
		}
		b.WriteByte(0)
	case '1', '2', '3', '4', '5', '6', '7':
		return l.errorf(start, ErrUnexpectedToken, "octal escape sequences are not allowed")
	case '\r':
		// line continuation
		if l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
		}
	case '\n':
	case 'x':
		v, ok := l.hex(2)
		if !ok {
			return l.errorf(start, ErrUnexpectedToken, "malformed \\x escape")
		}
		b.WriteRune(rune(v))
	case 'u':
		r, ok := l.unicodeEscape()
		if !ok {
			return l.errorf(start, ErrUnexpectedToken, "malformed \\u escape")
		}
		if utf16.IsSurrogate(r) {
			r = l.lowSurrogate(r)
		}
		b.WriteRune(r)
	default:
		l.pos--
		r, size := l.peekRune(l.pos)
		b.WriteRune(r)
		l.pos += size
	}
	return nil
}

// unicodeEscape decodes XXXX or {X...} after "\u".
func (l *lexer) unicodeEscape() (rune, bool) {
	if l.pos < len(l.src) && l.src[l.pos] == '{' {
		end := strings.IndexByte(string(l.src[l.pos:]), '}')
		if end < 2 || end > 7 {
			return 0, false
		}
		digits := l.src[l.pos+1 : l.pos+end]
		var v rune
		for _, d := range digits {
			if !isHexDigit(d) {
				return 0, false
			}
			v = v<<4 | rune(hexValue(d))
		}
		if v > unicode.MaxRune {
			return 0, false
		}
		l.pos += end + 1
		return v, true
	}

	v, ok := l.hex(4)
	return rune(v), ok
}

// lowSurrogate combines a high surrogate with a following \uXXXX low
// surrogate. Lone surrogates decode to U+FFFD.
func (l *lexer) lowSurrogate(high rune) rune {
	if high >= 0xDC00 || l.pos+6 > len(l.src) || l.src[l.pos] != '\\' || l.src[l.pos+1] != 'u' {
		return unicode.ReplacementChar
	}

	save := l.pos
	l.pos += 2
	low, ok := l.hex(4)
	if !ok || low < 0xDC00 || low > 0xDFFF {
		l.pos = save
		return unicode.ReplacementChar
	}
	return utf16.DecodeRune(high, rune(low))
}

func (l *lexer) hex(n int) (int, bool) {
	if l.pos+n > len(l.src) {
		return 0, false
	}
	v := 0
	for _, d := range l.src[l.pos : l.pos+n] {
		if !isHexDigit(d) {
			return 0, false
		}
		v = v<<4 | hexValue(d)
	}
	l.pos += n
	return v, true
}

func indexLineTerminator(b []byte) int {
	for i, c := range b {
		if c == '\n' || c == '\r' {
			return i
		}
	}
	return -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c|0x20 >= 'a' && c|0x20 <= 'f')
}

func hexValue(c byte) int {
	if isDigit(c) {
		return int(c - '0')
	}
	return int(c|0x20-'a') + 10
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\u200C' || r == '\u200D'
}
