package rewrite

import (
	"errors"
	"fmt"
)

// ErrIterationBoundExceeded is returned when a line holds more identifiers
// than the per-line rewrite limit.
var ErrIterationBoundExceeded = errors.New("too many identifiers on one line")

// IterationBoundError reports the line that hit the rewrite limit.
type IterationBoundError struct {
	Line  string
	Limit int
}

// Error implements error.
func (e *IterationBoundError) Error() string {
	return fmt.Sprintf("more than %d identifiers on line %q", e.Limit, e.Line)
}

// Unwrap returns ErrIterationBoundExceeded.
func (e *IterationBoundError) Unwrap() error {
	return ErrIterationBoundExceeded
}

// LineError locates a rewrite failure inside a file.
type LineError struct {
	// Path is set by callers that know which file the lines came from.
	Path string

	// Line is 1-based.
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}
