package likes

import (
	"time"

	"Peerpulse/internal/core/posts"
)

// Toggle outcome messages returned to clients
const (
	MessageLiked   = "Post Liked"
	MessageUnliked = "Post unliked"
)

// Like records that a user likes a post.
// At most one Like exists per (PostID, UserID).
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"postId" db:"post_id"`
	UserID    string    `json:"userId" db:"user_id"`
}

// ToggleResponse reports the outcome of a toggle and the post as it is afterwards
type ToggleResponse struct {
	Post    *posts.PostView `json:"post"`
	Message string          `json:"message"`
	Liked   bool            `json:"liked"`
}

// ToggleRequest is the body of a like toggle
type ToggleRequest struct {
	PostID string `json:"postId" validate:"required"`
}
