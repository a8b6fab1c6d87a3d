package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Student Errors
var (
	ErrStudentNotFound        = &CustomError{Err: ErrResourceNotFound, Message: "Student not found"}
	ErrStudentIDAlreadyExists = &CustomError{Err: ErrConflict, Message: "student ID already exists"}
)

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError wraps ErrValidationFailed with a field-level message.
func NewValidationError(format string, args ...interface{}) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewStoreUnavailableError wraps a connection failure so callers can match ErrStoreUnavailable.
func NewStoreUnavailableError(cause error) error {
	return &CustomError{
		Err:     errors.Join(ErrStoreUnavailable, cause),
		Message: "store unavailable: " + cause.Error(),
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
