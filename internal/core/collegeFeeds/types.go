package collegeFeeds

import (
	"Peerpulse/internal/core/paging"
	"Peerpulse/internal/core/posts"
)

// DefaultLimit applies when the client sends no usable limit.
// Positive limits are honoured as sent.
const DefaultLimit = 100

// Sort keys accepted from clients
const (
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter narrows the feed by exact field matches
type Filter struct {
	AuthorID *string `json:"authorId,omitempty"`
	Kind     *string `json:"kind,omitempty"`
}

// QueryRequest is a feed query as received from the edge.
// EntityID is the caller's college and always scopes the result.
type QueryRequest struct {
	Search   *string
	Cursor   *string
	Filter   Filter
	EntityID string
	SortBy   string
	SortType string
	Limit    int
}

// FindPostsQuery is the normalized query handed to the repository.
// Limit already includes the extra row used to detect another page.
type FindPostsQuery struct {
	Cursor     *string
	AuthorID   *string
	Kind       *posts.Kind
	EntityID   string
	Search     string
	SortBy     string
	Descending bool
	Limit      int
}

// FeedResponse is one page of the college feed
type FeedResponse = paging.Page[*posts.PostView]
