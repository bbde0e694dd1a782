// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Session transition errors.
	ErrMissingSubject    = errors.New("no subject selected")
	ErrNoActiveSession   = errors.New("no active session")
	ErrSessionNotRunning = errors.New("session is not running")
	ErrSessionNotPaused  = errors.New("session is not paused")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError represents an invalid user-initiated transition. It is
// surfaced synchronously and never retried.
type ValidationError struct {
	Err         error
	UserMessage string
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a user-facing validation error.
func NewValidationError(userMessage string, err error) error {
	return &ValidationError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// PersistenceError wraps a failed durable-store write. The finalize path
// retries these; the active-session record is kept until a write succeeds.
type PersistenceError struct {
	Err error
	Op  string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a storage failure with the operation that caused it.
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	var persistenceErr *PersistenceError
	if errors.As(err, &persistenceErr) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
