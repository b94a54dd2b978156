package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []token {
	t.Helper()
	l := newLexer([]byte(src))
	var out []token
	for {
		tok, err := l.next()
		require.NoError(t, err)
		if tok.kind == tokEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexer_Tokens(t *testing.T) {
	toks := lexAll(t, "require.config({a: 'x', \"b\": [1, -2.5e3, 0x1F]}); // done\n/* tail */")

	kinds := make([]tokenKind, 0, len(toks))
	texts := make([]string, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
		texts = append(texts, tok.text)
	}

	assert.Equal(t, []string{
		"require", ".", "config", "(", "{", "a", ":", "'x'", ",", `"b"`, ":",
		"[", "1", ",", "-", "2.5e3", ",", "0x1F", "]", "}", ")", ";",
	}, texts)
	assert.Equal(t, tokIdent, kinds[0])
	assert.Equal(t, tokString, kinds[7])
	assert.Equal(t, tokNumber, kinds[15])
}

func TestLexer_StringEscapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"simple escapes", `"a\nb\tc\\d\"e"`, "a\nb\tc\\d\"e"},
		{"single quoted", `'it\'s'`, "it's"},
		{"hex escape", `"\x41"`, "A"},
		{"unicode escape", `"\u00e9"`, "é"},
		{"code point escape", `"\u{1F600}"`, "\U0001F600"},
		{"surrogate pair", `"\uD83D\uDE00"`, "\U0001F600"},
		{"lone surrogate", `"\uD83D!"`, "\uFFFD!"},
		{"line continuation", "\"a\\\nb\"", "ab"},
		{"identity escape", `"\/\q"`, "/q"},
		{"nul", `"\0"`, "\x00"},
		{"raw unicode", `"Привет"`, "Привет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			require.Len(t, toks, 1)
			assert.Equal(t, tokString, toks[0].kind)
			assert.Equal(t, tt.want, toks[0].value)
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
	}{
		{"unterminated string", `"abc`, ErrUnexpectedToken},
		{"newline in string", "\"ab\ncd\"", ErrUnexpectedToken},
		{"unterminated comment", "/* abc", ErrUnexpectedToken},
		{"template literal", "`abc`", ErrNotLiteral},
		{"regex", "/ab+c/", ErrNotLiteral},
		{"bad hex escape", `"\xZZ"`, ErrUnexpectedToken},
		{"bad unicode escape", `"\u12"`, ErrUnexpectedToken},
		{"octal escape", `"\12"`, ErrUnexpectedToken},
		{"bad exponent", "1e+", ErrUnexpectedToken},
		{"empty hex", "0x", ErrUnexpectedToken},
		{"ident after number", "3in", ErrUnexpectedToken},
		{"bigint", "10n", ErrUnexpectedToken},
		{"operator", "a = 1", ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLexer([]byte(tt.src))
			var err error
			for err == nil {
				var tok token
				tok, err = l.next()
				if tok.kind == tokEOF && err == nil {
					break
				}
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestSyntaxError_Position(t *testing.T) {
	src := []byte("require.config({\n  a: 1,\n  b: foo\n})")

	_, err := Parse(src)
	require.Error(t, err)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 3, se.Line)
	assert.Equal(t, 6, se.Col)
	assert.Equal(t, 30, se.Offset)
	assert.Contains(t, se.Error(), `identifier "foo" is not a literal`)
}
