package structure

import (
	"errors"
	"fmt"
)

var (
	// ErrBoundaryData means an insert would push populated cells off the grid
	ErrBoundaryData = errors.New("data at the grid boundary would be lost")
	// ErrIndexOutOfRange means the target row/column is not a data index
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ValidationError reports a structural edit that was refused. The grid is
// left untouched when one is returned.
type ValidationError struct {
	Op    string
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Op, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message is a short user-facing explanation
func (e *ValidationError) Message() string {
	switch {
	case errors.Is(e.Err, ErrBoundaryData):
		return fmt.Sprintf("Cannot %s: the last %s contains data", e.Op, noun(e.Op))
	case errors.Is(e.Err, ErrIndexOutOfRange):
		return fmt.Sprintf("Cannot %s at %d", e.Op, e.Index)
	}
	return e.Error()
}

func noun(op string) string {
	switch op {
	case OpInsertColumn, OpRemoveColumn:
		return "column"
	}
	return "row"
}
