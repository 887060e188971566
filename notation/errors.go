package notation

import (
	"errors"
	"fmt"
)

var (
	ErrChecksumMismatch = errors.New("notation: checksum mismatch")
	ErrInvalidSeparator = errors.New("notation: separator must be whitespace or commas")
)

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, in bytes
	Offset int // 0-based byte offset
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// advance returns the position n bytes further along the same line.
func (p Position) advance(n int) Position {
	return Position{Line: p.Line, Column: p.Column + n, Offset: p.Offset + n}
}

// ParseError represents a failure at a specific source position. Err is the
// underlying cause, usually a *numeric.LiteralError, so errors.Is still
// matches the numeric sentinels.
type ParseError struct {
	Message string
	Pos     Position
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s at %s", e.Message, e.Pos)
	}
	return fmt.Sprintf("%s at %s: %v", e.Message, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
