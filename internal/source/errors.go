package source

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a stream holds no frames at all.
	ErrEmptyInput = errors.New("input contains no frames")

	// ErrMalformedLine matches any *MalformedLineError with errors.Is.
	ErrMalformedLine = errors.New("malformed line")
)

// MalformedLineError describes a data line that does not hold three
// floating-point coordinates.
type MalformedLineError struct {
	Line int    // 1-based line number in the stream
	Text string // line content without the trailing newline
	Err  error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}
