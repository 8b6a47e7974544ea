package core

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("task not found")
	// ErrNoSuggestionProvider is returned by SuggestFor when no provider is wired.
	ErrNoSuggestionProvider = errors.New("no suggestion provider configured")
)

// ValidationError reports a missing or empty required argument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports an identifier absent from the searched collections.
type NotFoundError struct {
	ID    string
	Scope string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such task %s in %s tasks", e.ID, e.Scope)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
