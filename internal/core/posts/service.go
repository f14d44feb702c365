package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type postService struct {
	repo   Repository
	logger *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*PostView, error) {
	if err := validateAuthoredContent(req.Content, req.AuthorID); err != nil {
		return nil, err
	}

	post := &Post{
		Title:     req.Title,
		Media:     blankToNil(req.Media),
		CollegeID: blankToNil(req.CollegeID),
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		Kind:      KindPost,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post_id", post.ID,
		"author", post.AuthorID,
		"college", deref(post.CollegeID))
	return post.View(), nil
}

func (s *postService) CreatePoll(ctx context.Context, req CreatePollRequest) (*PostView, error) {
	// Option count is checked first so an invalid poll never reaches storage
	if err := ValidatePollOptions(req.Options); err != nil {
		return nil, err
	}
	if err := validateAuthoredContent(req.Content, req.AuthorID); err != nil {
		return nil, err
	}

	options := make([]*Option, len(req.Options))
	for i, in := range req.Options {
		options[i] = &Option{
			Content:  in.Content,
			Position: i,
		}
	}

	post := &Post{
		Title:     req.Title,
		Media:     blankToNil(req.Media),
		CollegeID: blankToNil(req.CollegeID),
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		Kind:      KindPoll,
		Options:   options,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	s.logger.Info("poll created",
		"post_id", post.ID,
		"author", post.AuthorID,
		"options", len(post.Options))
	return post.View(), nil
}

func (s *postService) GetPostByID(ctx context.Context, id string) (*PostView, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewValidationError("postId", CodeRequired, "post id is required")
	}

	view, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return view, nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
