package extractor

import (
	"errors"
	"fmt"
)

// Capture error categories. Every error returned by [Extract] wraps exactly
// one of them inside a [*SyntaxError]; use [errors.Is] to tell them apart.
var (
	// ErrNoRegistrationCall is returned when the snippet does not start with
	// a call to a known registration function.
	ErrNoRegistrationCall = errors.New("no registration call found")

	// ErrUnexpectedToken is returned for input the literal grammar does not
	// know at all.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrNotLiteral is returned when the argument contains an expression
	// that is not a plain literal (identifiers, functions, operators,
	// templates, regexes, computed keys).
	ErrNotLiteral = errors.New("not a literal")

	// ErrExtraStatement is returned when anything but semicolons follows
	// the registration call.
	ErrExtraStatement = errors.New("extra statement after registration call")

	// ErrInvalidArgument is returned when the call does not have exactly one
	// object literal argument, or when the object does not fit the client
	// config shape.
	ErrInvalidArgument = errors.New("invalid registration argument")
)

// SyntaxError locates a capture error in the submitted snippet.
type SyntaxError struct {
	// Kind is one of the ErrXxx categories above.
	Kind error
	// Offset is the byte offset of the offending token.
	Offset int
	// Line and Col are 1-based; Col counts bytes.
	Line, Col int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// newSyntaxError builds a *SyntaxError for the byte offset off of src.
func newSyntaxError(src []byte, off int, kind error, format string, args ...any) *SyntaxError {
	if off > len(src) {
		off = len(src)
	}

	line, col := 1, 1
	for _, b := range src[:off] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}

	return &SyntaxError{
		Kind:   kind,
		Offset: off,
		Line:   line,
		Col:    col,
		Msg:    fmt.Sprintf(format, args...),
	}
}
