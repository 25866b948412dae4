package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a missing row. Repositories return it for
	// lookups and mutations that match nothing.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken reports a unique-constraint violation on email.
	ErrEmailTaken = errors.New("email is already taken")

	// ErrUnauthorized is the single outward failure for bad credentials.
	// The message never reveals whether the email or the password was
	// wrong.
	ErrUnauthorized = errors.New("invalid email or password")

	// ErrMissingToken reports an absent or malformed Authorization header.
	ErrMissingToken = errors.New("authorization token is missing")

	// ErrInvalidToken reports a token that failed validation.
	ErrInvalidToken = errors.New("authorization token is invalid")

	// ErrEmptyUpdate reports a user mutation with no fields to change.
	ErrEmptyUpdate = errors.New("user info is empty")
)

// ValidationError reports a malformed request field. It maps to a 400
// response at the transport boundary.
type ValidationError struct {
	Field string
	Err   error
}

// NewValidationError wraps a field validation failure.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
