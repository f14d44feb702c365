package likes

import "errors"

var (
	// ErrLikeNotFound indicates the user has not liked the post
	ErrLikeNotFound = errors.New("like not found")

	// ErrLikeConflict indicates a concurrent toggle already created the like
	ErrLikeConflict = errors.New("like was modified concurrently")

	// ErrUserRequired indicates the toggle was attempted without a user
	ErrUserRequired = errors.New("user is required to like a post")
)
