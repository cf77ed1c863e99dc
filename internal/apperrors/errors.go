package apperrors

import (
	"errors"
	"fmt"
)

// ErrForbidden carries no detail on purpose: denied callers should not
// learn which rule rejected them.
var ErrForbidden = errors.New("forbidden")

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an absent lead/booking/commission/user.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError reports a unique-key clash or a state conflict
// (duplicate email, invalid status transition).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// DependencyError wraps a failed store call. The wrapped error is logged
// server-side and never shown to the caller.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
