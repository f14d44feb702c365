package collegeFeeds

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCursor is returned when the cursor does not identify a stored post
	ErrInvalidCursor = errors.New("invalid pagination cursor")

	// ErrEntityRequired is returned when the caller has no college to scope the feed to
	ErrEntityRequired = &ValidationError{Field: "entityId", Message: "college is required to query the feed"}
)

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
