package comments

import (
	"context"

	"Peerpulse/internal/core/posts"
)

// Service defines the business logic interface for comments
type Service interface {
	// ListForPost returns one page of the post's comments, newest first.
	// Returns posts.ErrNotFound when the post is missing or soft-deleted.
	ListForPost(ctx context.Context, req ListRequest) (*ListResponse, error)

	// CreateComment adds a comment to an existing post
	CreateComment(ctx context.Context, req CreateCommentRequest) (*posts.CommentView, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts the comment, assigning ID and CreatedAt
	Create(ctx context.Context, comment *Comment) error

	// ListByPost returns at most query.Limit comments ordered by
	// (created_at DESC, id DESC) strictly after the cursor comment.
	// Returns ErrInvalidCursor when the cursor is not a comment of the post.
	ListByPost(ctx context.Context, query ListQuery) ([]*posts.CommentView, error)
}

// PostReader loads the read view of a post
type PostReader interface {
	GetPostByID(ctx context.Context, id string) (*posts.PostView, error)
}
