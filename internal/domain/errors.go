package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Store errors
	ErrMsgConnection = "database connection failed"
	ErrMsgQuery      = "query failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Item errors
	ErrMsgItemNotFound = "item not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrConnection means the store could not be reached
	ErrConnection = errors.New(ErrMsgConnection)

	// ErrQuery means the store rejected the statement (syntax, undefined column, constraint)
	ErrQuery = errors.New(ErrMsgQuery)

	// ErrInvalidInput means a query-string parameter could not be bound
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
)

// QueryError is a store-side statement failure carrying the SQLSTATE code.
// errors.Is(err, ErrQuery) reports true for any *QueryError.
type QueryError struct {
	Code string
	Err  error
}

func (e *QueryError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %v", ErrMsgQuery, e.Err)
	}
	return fmt.Sprintf("%s (code %s): %v", ErrMsgQuery, e.Code, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// InvalidInputf builds an ErrInvalidInput wrapped with a formatted detail message
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
