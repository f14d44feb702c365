package comments

import (
	"time"

	"Peerpulse/internal/core/paging"
	"Peerpulse/internal/core/posts"
)

const (
	// DefaultLimit is the page size when the client sends none
	DefaultLimit = 20
	// MaxLimit caps a single page of comments
	MaxLimit = 100
	// MaxContentLength is the longest comment accepted, in runes
	MaxContentLength = 10000
)

// Comment is a flat reply attached to a post
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"postId" db:"post_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
}

// CreateCommentRequest is a new comment from the authenticated user
type CreateCommentRequest struct {
	PostID   string `json:"-"`
	AuthorID string `json:"-"`
	Content  string `json:"content" validate:"required"`
}

// ListRequest asks for one page of a post's comments, newest first
type ListRequest struct {
	Cursor *string
	PostID string
	Limit  int
}

// ListQuery is the normalized request handed to the repository.
// Limit includes the extra row used to detect another page.
type ListQuery struct {
	Cursor *string
	PostID string
	Limit  int
}

// ListResponse is one page of comments
type ListResponse = paging.Page[*posts.CommentView]
