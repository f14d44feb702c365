package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Peerpulse/internal/core/likes"

	"github.com/google/uuid"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

func (r *postgresLikeRepo) FindByPostAndUser(ctx context.Context, postID, userID string) (*likes.Like, error) {
	if !isUUID(postID) {
		return nil, likes.ErrLikeNotFound
	}

	var like likes.Like
	err := r.db.QueryRowContext(ctx, `
		SELECT id, post_id, user_id, created_at
		FROM likes
		WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	).Scan(&like.ID, &like.PostID, &like.UserID, &like.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, likes.ErrLikeNotFound
		}
		return nil, fmt.Errorf("failed to get like: %w", err)
	}
	return &like, nil
}

// Create inserts a like. The likes_post_user_key constraint decides races.
func (r *postgresLikeRepo) Create(ctx context.Context, like *likes.Like) error {
	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO likes (id, post_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		id, like.PostID, like.UserID,
	).Scan(&like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return likes.ErrLikeConflict
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	like.ID = id
	return nil
}

// Delete removes a like; zero affected rows means a concurrent unlike won
func (r *postgresLikeRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}
