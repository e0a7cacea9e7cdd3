// Package reporterror defines the error taxonomy shared by the report engine,
// the expense stores and the document writers.
package reporterror

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("row index out of range")
	// ErrUnknownField is matched by every UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnsupportedFormat is returned when no document writer exists for a format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrUnknownBackend is returned when no expense store exists for a backend name.
	ErrUnknownBackend = errors.New("unknown store backend")
	// ErrNotFound is returned by stores when a record does not exist.
	ErrNotFound = errors.New("not found")
)

// IndexOutOfRangeError represents an edit addressed to a row that does not exist.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("row index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// UnknownFieldError represents an edit addressed to a column name that is not recognized.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field '%s'", e.Field)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// StoreError represents a failure of an expense store backend.
type StoreError struct {
	Backend string
	Op      string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure while writing a report document.
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("export %s to '%s': %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
