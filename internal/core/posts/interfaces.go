package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// CreatePost validates and stores a plain post
	CreatePost(ctx context.Context, req CreatePostRequest) (*PostView, error)

	// CreatePoll validates the option count before anything is stored,
	// then writes the poll and its options atomically
	CreatePoll(ctx context.Context, req CreatePollRequest) (*PostView, error)

	// GetPostByID returns the read view of a non-deleted post.
	// No college check is applied.
	GetPostByID(ctx context.Context, id string) (*PostView, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts the post and any options in one transaction.
	// Assigns ID, timestamps and option IDs/positions on the passed value.
	Create(ctx context.Context, post *Post) error

	// GetByID returns the view of a post, or ErrNotFound when it is
	// missing or soft-deleted
	GetByID(ctx context.Context, id string) (*PostView, error)
}
