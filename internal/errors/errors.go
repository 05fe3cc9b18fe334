// Package errors provides consistent error types for Daycheck.
// It defines four categories: ValidationError (rejected input, no state
// change), ErrNotFound (id lookup failed, treated as a silent no-op),
// ConflictError (the action conflicts with current state and is surfaced as a
// warning), and CorruptionError (a persisted snapshot failed to load and was
// recovered to empty defaults).
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyAttended   = errors.New("already attended")
	ErrAlreadyClockedOut = errors.New("already clocked out")
	ErrNoPendingAction   = errors.New("no pending confirmation")
	ErrTokenMismatch     = errors.New("confirmation token mismatch")
)

// IsNotFound reports whether err means a record lookup failed.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ValidationError represents input the user can fix. The action is rejected
// with no state change.
type ValidationError struct {
	Field      string // the field that caused the error (optional)
	Message    string // what is wrong
	Suggestion string // how to fix it
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidation creates a ValidationError.
func NewValidation(message, suggestion string) *ValidationError {
	return &ValidationError{Message: message, Suggestion: suggestion}
}

// NewValidationField creates a ValidationError with field context.
func NewValidationField(field, message, suggestion string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Suggestion: suggestion}
}

// ConflictError represents an action that conflicts with current state, e.g.
// marking attendance twice for the same day. The original state is preserved
// and the message is shown as a warning, not a failure.
type ConflictError struct {
	Message string
	Cause   error
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// NewConflict creates a ConflictError wrapping a sentinel cause.
func NewConflict(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

// CorruptionError records that persisted data could not be decoded. It is
// recovered locally by resetting to empty defaults and never propagated as a
// fatal failure.
type CorruptionError struct {
	Message string
	Cause   error
}

func (e *CorruptionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CorruptionError) Unwrap() error {
	return e.Cause
}

// NewCorruption creates a CorruptionError.
func NewCorruption(message string, cause error) *CorruptionError {
	return &CorruptionError{Message: message, Cause: cause}
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict checks if an error is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsCorruption checks if an error is a CorruptionError.
func IsCorruption(err error) bool {
	var ce *CorruptionError
	return errors.As(err, &ce)
}

// AsValidation extracts a ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// AsConflict extracts a ConflictError from an error chain.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted additional context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
