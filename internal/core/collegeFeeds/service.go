package collegeFeeds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Peerpulse/internal/core/paging"
	"Peerpulse/internal/core/posts"
)

type feedService struct {
	repo Repository
}

// NewCollegeFeedService creates a new feed service
func NewCollegeFeedService(repo Repository) Service {
	return &feedService{repo: repo}
}

// QueryFeed retrieves one page of a college's posts
func (s *feedService) QueryFeed(ctx context.Context, req QueryRequest) (*FeedResponse, error) {
	query, err := buildQuery(req)
	if err != nil {
		return nil, err
	}
	limit := query.Limit
	query.Limit = limit + 1

	rows, err := s.repo.FindPosts(ctx, query)
	if err != nil {
		if errors.Is(err, ErrInvalidCursor) {
			return nil, ErrInvalidCursor
		}
		return nil, fmt.Errorf("failed to query college feed: %w", err)
	}

	return paging.NewPage(rows, limit, func(p *posts.PostView) string { return p.ID }), nil
}

// buildQuery validates the request and applies defaults
func buildQuery(req QueryRequest) (FindPostsQuery, error) {
	entityID := strings.TrimSpace(req.EntityID)
	if entityID == "" {
		return FindPostsQuery{}, ErrEntityRequired
	}

	query := FindPostsQuery{
		EntityID: entityID,
		Limit:    paging.NormalizeLimit(req.Limit, DefaultLimit, 0),
	}

	switch sortBy := strings.TrimSpace(req.SortBy); sortBy {
	case "":
		query.SortBy = SortByCreatedAt
	case SortByCreatedAt, SortByUpdatedAt:
		query.SortBy = sortBy
	default:
		return FindPostsQuery{}, NewValidationError("sortBy", "sortBy must be one of: createdAt, updatedAt")
	}

	switch strings.ToLower(strings.TrimSpace(req.SortType)) {
	case "", SortDesc:
		query.Descending = true
	case SortAsc:
		query.Descending = false
	default:
		return FindPostsQuery{}, NewValidationError("sortType", "sortType must be one of: asc, desc")
	}

	if req.Search != nil {
		query.Search = strings.TrimSpace(*req.Search)
	}

	if req.Cursor != nil && strings.TrimSpace(*req.Cursor) != "" {
		cursor := strings.TrimSpace(*req.Cursor)
		query.Cursor = &cursor
	}

	if req.Filter.AuthorID != nil && strings.TrimSpace(*req.Filter.AuthorID) != "" {
		authorID := strings.TrimSpace(*req.Filter.AuthorID)
		query.AuthorID = &authorID
	}

	if req.Filter.Kind != nil && strings.TrimSpace(*req.Filter.Kind) != "" {
		kind, ok := posts.ParseKind(*req.Filter.Kind)
		if !ok {
			return FindPostsQuery{}, NewValidationError("kind", "kind must be one of: POST, POLL")
		}
		query.Kind = &kind
	}

	return query, nil
}
