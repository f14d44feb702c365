package collegeFeeds

import (
	"context"

	"Peerpulse/internal/core/posts"
)

// Service defines the business logic interface for the college feed
type Service interface {
	// QueryFeed returns one page of non-deleted posts of the requested college
	QueryFeed(ctx context.Context, req QueryRequest) (*FeedResponse, error)
}

// Repository defines the data access interface for feed queries
type Repository interface {
	// FindPosts returns at most query.Limit posts matching the query, ordered by
	// the sort field with id as tie-breaker, strictly after the cursor post.
	// Returns ErrInvalidCursor when the cursor post does not exist.
	FindPosts(ctx context.Context, query FindPostsQuery) ([]*posts.PostView, error)
}
