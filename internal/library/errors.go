package library

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that none of the candidate locations hold the
// requested file.
var ErrNotFound = errors.New("file not found in library")

// ParseError indicates that a candidate file exists but could not be parsed
// into a date-indexed table. The underlying cause is preserved for
// inspection via errors.As / Unwrap.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}
