package posts

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a post does not exist or was soft-deleted
var ErrNotFound = errors.New("post not found")

// Validation codes surfaced to clients
const (
	CodeTooFewOptions  = "TooFewOptions"
	CodeTooManyOptions = "TooManyOptions"
	CodeRequired       = "Required"
	CodeInvalid        = "Invalid"
)

// ValidationError represents a rejected input field
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, code, message string) error {
	return &ValidationError{
		Field:   field,
		Code:    code,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// ValidationCode returns the code of a validation error, or "" for other errors
func ValidationCode(err error) string {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Code
	}
	return ""
}

// IsNotFound checks if error is a post not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
