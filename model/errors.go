package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrLineTooLong marks a pattern line wider than the grid interior
	ErrLineTooLong = errors.New("line too long")
	// ErrTooManyRows marks a pattern file with more lines than the grid interior
	ErrTooManyRows = errors.New("too many rows")
)

// FileError is returned when a pattern file cannot be opened or read
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("input file %q cannot be opened: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FormatError is returned when a pattern file does not fit the grid.
// Line is the 1-based line number that broke the limit.
type FormatError struct {
	Line  int
	Limit int
	Err   error
}

func (e *FormatError) Error() string {
	if errors.Is(e.Err, ErrTooManyRows) {
		return fmt.Sprintf("%v: there are more than %d lines in the file", e.Err, e.Limit)
	}
	return fmt.Sprintf("%v: line %d contains more than %d chars", e.Err, e.Line, e.Limit)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RangeError is returned when neighbors are requested for a cell outside the interior
type RangeError struct {
	Row, Col int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid cell (%d, %d) for neighbor count", e.Row, e.Col)
}
