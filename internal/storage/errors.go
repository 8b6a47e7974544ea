package storage

import (
	"errors"
	"fmt"
)

// ErrStorage is the sentinel matched by every StorageError.
var ErrStorage = errors.New("storage error")

// ErrNotFound is returned by Find when no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// StorageError reports an unreadable, unwritable, or malformed collection file.
// Line is the 1-based line of the offending row, or 0 when not row specific.
type StorageError struct {
	Op   string
	Path string
	Line int
	Err  error
}

func (e *StorageError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s:%d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrStorage and the underlying cause to errors.Is/As.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}
