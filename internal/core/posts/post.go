package posts

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes plain posts from polls
type Kind string

const (
	KindPost Kind = "POST"
	KindPoll Kind = "POLL"
)

// ParseKind matches a kind case-insensitively
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindPost:
		return KindPost, true
	case KindPoll:
		return KindPoll, true
	default:
		return "", false
	}
}

// Post is a feed item authored by a user and scoped to a college.
// Polls carry their choices in Options; plain posts have none.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Title     *string   `json:"title" db:"title"`
	Media     *string   `json:"media" db:"media"`
	CollegeID *string   `json:"collegeId" db:"college_id"`
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Kind      Kind      `json:"type" db:"kind"`
	Options   []*Option `json:"options,omitempty"`
	IsEdited  bool      `json:"isEdited" db:"is_edited"`
	IsDeleted bool      `json:"isDeleted" db:"is_deleted"`
}

// Option is one choice of a poll
type Option struct {
	ID       string `json:"id" db:"id"`
	PostID   string `json:"postId" db:"post_id"`
	Content  string `json:"content" db:"content"`
	Position int    `json:"position" db:"position"`
}

// OptionInput is a poll choice as submitted by a client.
// Both "label" and {"content":"label"} forms are accepted.
type OptionInput struct {
	Content string `json:"content"`
}

// UnmarshalJSON accepts a bare string or an object with a content field
func (o *OptionInput) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Content = s
		return nil
	}

	var obj struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("poll option must be a string or an object with content: %w", err)
	}
	o.Content = obj.Content
	return nil
}

// CreatePostRequest carries the fields of a new plain post.
// AuthorID and CollegeID come from the authenticated caller, not the body.
type CreatePostRequest struct {
	Title     *string `json:"title,omitempty"`
	Media     *string `json:"media,omitempty"`
	CollegeID *string `json:"-"`
	Content   string  `json:"content"`
	AuthorID  string  `json:"-"`
}

// CreatePollRequest carries the fields of a new poll
type CreatePollRequest struct {
	Title     *string       `json:"title,omitempty"`
	Media     *string       `json:"media,omitempty"`
	CollegeID *string       `json:"-"`
	Content   string        `json:"content"`
	AuthorID  string        `json:"-"`
	Options   []OptionInput `json:"options"`
}

// PostView is the read shape served by the feed and by single-post lookups
type PostView struct {
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Title        *string        `json:"title"`
	Media        *string        `json:"media"`
	CollegeID    *string        `json:"collegeId"`
	FirstComment *CommentView   `json:"firstComment"`
	Author       *AuthorSummary `json:"author"`
	ID           string         `json:"id"`
	Content      string         `json:"content"`
	AuthorID     string         `json:"authorId"`
	Kind         Kind           `json:"type"`
	Options      []*Option      `json:"options"`
	Stats        PostStats      `json:"stats"`
	IsEdited     bool           `json:"isEdited"`
}

// View converts a freshly stored post into its read shape.
// Counters start at zero and there is no first comment yet.
func (p *Post) View() *PostView {
	options := p.Options
	if options == nil {
		options = make([]*Option, 0)
	}
	return &PostView{
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Title:     p.Title,
		Media:     p.Media,
		CollegeID: p.CollegeID,
		ID:        p.ID,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Kind:      p.Kind,
		Options:   options,
		IsEdited:  p.IsEdited,
	}
}

// AuthorSummary is the public slice of a user shown next to content
type AuthorSummary struct {
	CollegeID *string `json:"collegeId"`
	ID        string  `json:"id"`
	Name      string  `json:"name"`
}

// CommentView is a comment with its author summary
type CommentView struct {
	CreatedAt time.Time      `json:"createdAt"`
	Author    *AuthorSummary `json:"author"`
	ID        string         `json:"id"`
	PostID    string         `json:"postId"`
	AuthorID  string         `json:"authorId"`
	Content   string         `json:"content"`
}

// PostStats holds derived counters for a post
type PostStats struct {
	CommentCount int `json:"commentCount"`
	LikeCount    int `json:"likeCount"`
}
