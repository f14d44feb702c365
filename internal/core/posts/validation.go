package posts

import (
	"fmt"
	"strings"
)

// Poll option bounds, inclusive
const (
	MinPollOptions = 2
	MaxPollOptions = 10
)

// ValidatePollOptions checks the number of options only.
// Blank or duplicate labels are not rejected here.
func ValidatePollOptions(options []OptionInput) error {
	switch n := len(options); {
	case n < MinPollOptions:
		return NewValidationError("options", CodeTooFewOptions,
			fmt.Sprintf("poll needs at least %d options, got %d", MinPollOptions, n))
	case n > MaxPollOptions:
		return NewValidationError("options", CodeTooManyOptions,
			fmt.Sprintf("poll allows at most %d options, got %d", MaxPollOptions, n))
	}
	return nil
}

func validateAuthoredContent(content, authorID string) error {
	if strings.TrimSpace(authorID) == "" {
		return NewValidationError("authorId", CodeRequired, "author is required")
	}
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", CodeRequired, "content is required")
	}
	return nil
}
