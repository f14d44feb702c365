package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"Peerpulse/internal/core/collegeFeeds"
	"Peerpulse/internal/core/posts"
)

// sortColumns whitelists the sortable fields for dynamic ORDER BY
var sortColumns = map[string]string{
	collegeFeeds.SortByCreatedAt: "created_at",
	collegeFeeds.SortByUpdatedAt: "updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// feedCursor is the keyset position of the post a page ended on
type feedCursor struct {
	sortValue time.Time
	id        string
}

type postgresFeedRepo struct {
	db *sql.DB
}

// NewCollegeFeedRepository creates a new PostgreSQL college feed repository
func NewCollegeFeedRepository(db *sql.DB) collegeFeeds.Repository {
	return &postgresFeedRepo{db: db}
}

// FindPosts runs the keyset feed query. Uses idx_posts_college_created or
// idx_posts_college_updated depending on the sort field.
func (r *postgresFeedRepo) FindPosts(ctx context.Context, q collegeFeeds.FindPostsQuery) ([]*posts.PostView, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", q.SortBy)
	}

	var cursor *feedCursor
	if q.Cursor != nil {
		c, err := r.lookupCursor(ctx, *q.Cursor, column)
		if err != nil {
			return nil, err
		}
		cursor = c
	}

	query, args, err := buildFeedQuery(q, cursor)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var views []*posts.PostView
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed post: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed results: %w", err)
	}

	if err := loadOptions(ctx, r.db, views); err != nil {
		return nil, err
	}
	return views, nil
}

// lookupCursor resolves a cursor post id to its keyset position
func (r *postgresFeedRepo) lookupCursor(ctx context.Context, id, column string) (*feedCursor, error) {
	if !isUUID(id) {
		return nil, collegeFeeds.ErrInvalidCursor
	}

	var sortValue time.Time
	// column comes from sortColumns, never from input
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1`, column)
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&sortValue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, collegeFeeds.ErrInvalidCursor
		}
		return nil, fmt.Errorf("failed to resolve cursor: %w", err)
	}
	return &feedCursor{sortValue: sortValue, id: id}, nil
}

// buildFeedQuery renders the feed SELECT and its positional arguments
func buildFeedQuery(q collegeFeeds.FindPostsQuery, cursor *feedCursor) (string, []any, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort field %q", q.SortBy)
	}

	direction, comparator := "ASC", ">"
	if q.Descending {
		direction, comparator = "DESC", "<"
	}

	args := []any{q.EntityID}
	where := []string{"p.college_id = $1", "p.is_deleted = FALSE"}

	if q.AuthorID != nil {
		args = append(args, *q.AuthorID)
		where = append(where, fmt.Sprintf("p.author_id = $%d", len(args)))
	}
	if q.Kind != nil {
		args = append(args, string(*q.Kind))
		where = append(where, fmt.Sprintf("p.kind = $%d", len(args)))
	}
	if q.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(q.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(`(p.title ILIKE $%d ESCAPE '\' OR p.content ILIKE $%d ESCAPE '\')`, n, n))
	}
	if cursor != nil {
		args = append(args, cursor.sortValue, cursor.id)
		where = append(where, fmt.Sprintf("(p.%s, p.id) %s ($%d, $%d::uuid)",
			column, comparator, len(args)-1, len(args)))
	}

	args = append(args, q.Limit)
	query := fmt.Sprintf(`SELECT %s
		FROM posts p %s
		WHERE %s
		ORDER BY p.%s %s, p.id %s
		LIMIT $%d`,
		postViewColumns, postViewJoins,
		strings.Join(where, " AND "),
		column, direction, direction,
		len(args))

	return query, args, nil
}
