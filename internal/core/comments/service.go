package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"Peerpulse/internal/core/paging"
	"Peerpulse/internal/core/posts"
)

type commentService struct {
	repo   Repository
	posts  PostReader
	logger *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, posts PostReader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:   repo,
		posts:  posts,
		logger: logger,
	}
}

func (s *commentService) ListForPost(ctx context.Context, req ListRequest) (*ListResponse, error) {
	if _, err := s.posts.GetPostByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	limit := paging.NormalizeLimit(req.Limit, DefaultLimit, MaxLimit)
	query := ListQuery{
		PostID: req.PostID,
		Limit:  limit + 1,
	}
	if req.Cursor != nil && strings.TrimSpace(*req.Cursor) != "" {
		cursor := strings.TrimSpace(*req.Cursor)
		query.Cursor = &cursor
	}

	rows, err := s.repo.ListByPost(ctx, query)
	if err != nil {
		if errors.Is(err, ErrInvalidCursor) {
			return nil, ErrInvalidCursor
		}
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return paging.NewPage(rows, limit, func(c *posts.CommentView) string { return c.ID }), nil
}

func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*posts.CommentView, error) {
	if strings.TrimSpace(req.AuthorID) == "" {
		return nil, ErrAuthorRequired
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	if _, err := s.posts.GetPostByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	comment := &Comment{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Content:  content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created",
		"comment_id", comment.ID,
		"post_id", comment.PostID,
		"author", comment.AuthorID)

	return &posts.CommentView{
		CreatedAt: comment.CreatedAt,
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
	}, nil
}
