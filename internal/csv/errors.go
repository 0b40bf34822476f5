package csv

import (
	"errors"
	"fmt"
)

var (
	// ErrQuote is returned when a closing quote is followed by anything other
	// than a field separator, a newline, or the end of the text.
	ErrQuote = errors.New("csv: unexpected character after closing quote")
	// ErrUnterminated is returned when the text ends inside a quoted field.
	ErrUnterminated = errors.New("csv: unterminated quoted field")
)

// ParseError reports a syntax error with the line it was found on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("csv: parse error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports a row whose field count disagrees with the column count.
// Row is 1-based, matching user-facing row numbering.
type ShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("csv: row %d: expected %d fields, got %d", e.Row, e.Want, e.Got)
}
