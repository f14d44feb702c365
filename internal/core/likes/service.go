package likes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

type likeService struct {
	repo   Repository
	posts  PostReader
	logger *slog.Logger
}

// NewLikeService creates a new like service
func NewLikeService(repo Repository, posts PostReader, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{
		repo:   repo,
		posts:  posts,
		logger: logger,
	}
}

// ToggleLike flips the like state of userID on postID:
// - Not liked -> create like, "Post Liked"
// - Liked -> delete like, "Post unliked"
func (s *likeService) ToggleLike(ctx context.Context, postID, userID string) (*ToggleResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUserRequired
	}

	// Post must exist before anything is written
	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByPostAndUser(ctx, postID, userID)
	var resp ToggleResponse
	switch {
	case err == nil:
		if err := s.repo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
		resp.Message = MessageUnliked
		s.logger.Info("post unliked", "post_id", postID, "user", userID)

	case errors.Is(err, ErrLikeNotFound):
		if err := s.repo.Create(ctx, &Like{PostID: postID, UserID: userID}); err != nil {
			if errors.Is(err, ErrLikeConflict) {
				return nil, ErrLikeConflict
			}
			return nil, fmt.Errorf("failed to create like: %w", err)
		}
		resp.Message = MessageLiked
		resp.Liked = true
		s.logger.Info("post liked", "post_id", postID, "user", userID)

	default:
		return nil, fmt.Errorf("failed to check existing like: %w", err)
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	resp.Post = post
	return &resp, nil
}
