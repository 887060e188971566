package numeric

import (
	"errors"
	"fmt"
)

// Numeric tower errors. Every failure returned by this package wraps one of
// these, so callers can classify with errors.Is.
var (
	ErrDivisionByZero     = errors.New("numeric: division by zero")
	ErrMalformedLiteral   = errors.New("numeric: malformed literal")
	ErrIncomparableType   = errors.New("numeric: incomparable type")
	ErrArithmeticOverflow = errors.New("numeric: arithmetic overflow")

	ErrNoConvergence  = errors.New("numeric: approximation did not converge")
	ErrNotFinite      = errors.New("numeric: value is not finite")
	ErrInvalidEpsilon = errors.New("numeric: epsilon must be a non-negative number")
)

// LiteralError reports a literal that could not be turned into a value.
//
// The error carries no line or column: Offset is the byte offset inside
// Text where the problem was found, and the reader that isolated the
// literal adds its own source position.
type LiteralError struct {
	Kind   LiteralKind // Shape the text was being parsed as, LiteralUnknown if none matched
	Text   string
	Offset int
	Err    error
}

func (e *LiteralError) Error() string {
	if e.Kind == LiteralUnknown {
		return fmt.Sprintf("literal %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("%s literal %q at offset %d: %v", e.Kind, e.Text, e.Offset, e.Err)
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}

func literalErr(kind LiteralKind, text string, offset int, err error) error {
	return &LiteralError{Kind: kind, Text: text, Offset: offset, Err: err}
}

func incomparable(a, b Kind) error {
	return fmt.Errorf("%w: %s and %s", ErrIncomparableType, a, b)
}
