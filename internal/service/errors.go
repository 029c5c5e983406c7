package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a lookup by identifier matched nothing.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a missing, malformed or expired bearer token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden indicates the authenticated identity lacks the admin role.
	ErrForbidden = errors.New("admin privileges required")
)

// ValidationError rejects malformed or missing input before persistence.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
