package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Peerpulse/internal/core/comments"
	"Peerpulse/internal/core/posts"

	"github.com/google/uuid"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	id := uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, post_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		id, comment.PostID, comment.AuthorID, comment.Content,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	comment.ID = id
	return nil
}

// ListByPost pages comments newest first using idx_comments_post_created
func (r *postgresCommentRepo) ListByPost(ctx context.Context, q comments.ListQuery) ([]*posts.CommentView, error) {
	args := []any{q.PostID}
	keyset := ""
	if q.Cursor != nil {
		createdAt, err := r.cursorPosition(ctx, q.PostID, *q.Cursor)
		if err != nil {
			return nil, err
		}
		args = append(args, createdAt, *q.Cursor)
		keyset = "AND (c.created_at, c.id) < ($2, $3::uuid)"
	}
	args = append(args, q.Limit)

	query := fmt.Sprintf(`
		SELECT c.id, c.post_id, c.author_id, c.content, c.created_at,
		       u.id, u.name, u.college_id
		FROM comments c
		LEFT JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1 %s
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $%d`, keyset, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*posts.CommentView
	for rows.Next() {
		var (
			view                      posts.CommentView
			authorID, name, collegeID sql.NullString
		)
		if err := rows.Scan(&view.ID, &view.PostID, &view.AuthorID, &view.Content, &view.CreatedAt,
			&authorID, &name, &collegeID); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		view.Author = authorSummary(authorID, name, collegeID)
		out = append(out, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return out, nil
}

// cursorPosition returns the created_at of the cursor comment, which must
// belong to the listed post
func (r *postgresCommentRepo) cursorPosition(ctx context.Context, postID, cursor string) (time.Time, error) {
	var createdAt time.Time
	if !isUUID(cursor) {
		return createdAt, comments.ErrInvalidCursor
	}
	err := r.db.QueryRowContext(ctx,
		`SELECT created_at FROM comments WHERE id = $1 AND post_id = $2`,
		cursor, postID,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return createdAt, comments.ErrInvalidCursor
		}
		return createdAt, fmt.Errorf("failed to resolve comment cursor: %w", err)
	}
	return createdAt, nil
}
