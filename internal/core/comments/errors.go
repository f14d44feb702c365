package comments

import "errors"

var (
	// ErrInvalidCursor indicates the cursor does not identify a comment of the post
	ErrInvalidCursor = errors.New("invalid pagination cursor")

	// ErrContentTooLong indicates comment content exceeds MaxContentLength runes
	ErrContentTooLong = errors.New("comment content exceeds 10000 characters")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("comment content is required")

	// ErrAuthorRequired indicates the comment has no author
	ErrAuthorRequired = errors.New("comment author is required")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrAuthorRequired)
}
