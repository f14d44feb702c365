package likes

import (
	"context"

	"Peerpulse/internal/core/posts"
)

// Service defines the business logic interface for likes
type Service interface {
	// ToggleLike likes the post if the user has not, otherwise removes the like.
	// Returns posts.ErrNotFound before any mutation when the post is missing.
	ToggleLike(ctx context.Context, postID, userID string) (*ToggleResponse, error)
}

// Repository defines the data access interface for likes
type Repository interface {
	// FindByPostAndUser returns the like of userID on postID, or ErrLikeNotFound
	FindByPostAndUser(ctx context.Context, postID, userID string) (*Like, error)

	// Create inserts a like. A unique violation on (post, user) maps to ErrLikeConflict.
	Create(ctx context.Context, like *Like) error

	// Delete removes a like by id. Deleting an absent like is not an error.
	Delete(ctx context.Context, id string) error
}

// PostReader loads the read view of a post
type PostReader interface {
	GetPostByID(ctx context.Context, id string) (*posts.PostView, error)
}
