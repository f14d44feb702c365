package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"Peerpulse/internal/core/posts"

	"github.com/google/uuid"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts the post and its poll options in one transaction
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	postID := uuid.NewString()
	var stored posts.Post
	err = tx.QueryRowContext(ctx, `
		INSERT INTO posts (id, title, content, author_id, college_id, media, kind)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at, is_edited, is_deleted`,
		postID, post.Title, post.Content, post.AuthorID, post.CollegeID, post.Media, string(post.Kind),
	).Scan(&stored.CreatedAt, &stored.UpdatedAt, &stored.IsEdited, &stored.IsDeleted)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	optionIDs := make([]string, len(post.Options))
	for i, opt := range post.Options {
		optionIDs[i] = uuid.NewString()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO post_options (id, post_id, content, position)
			VALUES ($1, $2, $3, $4)`,
			optionIDs[i], postID, opt.Content, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert poll option %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// Generated fields are only published once the write is durable
	post.ID = postID
	post.CreatedAt = stored.CreatedAt
	post.UpdatedAt = stored.UpdatedAt
	post.IsEdited = stored.IsEdited
	post.IsDeleted = stored.IsDeleted
	for i, opt := range post.Options {
		opt.ID = optionIDs[i]
		opt.PostID = postID
		opt.Position = i
	}
	return nil
}

// GetByID returns the view of a non-deleted post
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.PostView, error) {
	if !isUUID(id) {
		return nil, posts.ErrNotFound
	}

	query := `SELECT ` + postViewColumns + `
		FROM posts p ` + postViewJoins + `
		WHERE p.id = $1 AND p.is_deleted = FALSE`

	view, err := scanPostView(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, posts.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := loadOptions(ctx, r.db, []*posts.PostView{view}); err != nil {
		return nil, err
	}
	return view, nil
}
