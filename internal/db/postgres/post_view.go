package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Peerpulse/internal/core/posts"

	"github.com/lib/pq"
)

// postViewColumns and postViewJoins assemble a PostView in a single query:
// author summary, comment/like counts and the most recent comment.
// Callers alias posts as p.
//
// INDEXES USED:
//   - idx_comments_post_created for the first-comment lateral join and comment count
//   - likes_post_user_key (post_id leading) for the like count
const postViewColumns = `
	p.id, p.title, p.content, p.author_id, p.college_id, p.media, p.kind,
	p.is_edited, p.created_at, p.updated_at,
	u.id, u.name, u.college_id,
	(SELECT COUNT(*) FROM comments cc WHERE cc.post_id = p.id) AS comment_count,
	(SELECT COUNT(*) FROM likes lc WHERE lc.post_id = p.id) AS like_count,
	fc.id, fc.author_id, fc.content, fc.created_at,
	fu.id, fu.name, fu.college_id`

const postViewJoins = `
	LEFT JOIN users u ON u.id = p.author_id
	LEFT JOIN LATERAL (
		SELECT c.id, c.author_id, c.content, c.created_at
		FROM comments c
		WHERE c.post_id = p.id
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT 1
	) fc ON TRUE
	LEFT JOIN users fu ON fu.id = fc.author_id`

type rowScanner interface {
	Scan(dest ...any) error
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func scanPostView(row rowScanner) (*posts.PostView, error) {
	var (
		view                                posts.PostView
		title, collegeID, media             sql.NullString
		kind                                string
		authorID, authorName, authorCollege sql.NullString
		fcID, fcAuthorID, fcContent         sql.NullString
		fcCreatedAt                         sql.NullTime
		fuID, fuName, fuCollege             sql.NullString
	)

	err := row.Scan(
		&view.ID, &title, &view.Content, &view.AuthorID, &collegeID, &media, &kind,
		&view.IsEdited, &view.CreatedAt, &view.UpdatedAt,
		&authorID, &authorName, &authorCollege,
		&view.Stats.CommentCount, &view.Stats.LikeCount,
		&fcID, &fcAuthorID, &fcContent, &fcCreatedAt,
		&fuID, &fuName, &fuCollege,
	)
	if err != nil {
		return nil, err
	}

	view.Kind = posts.Kind(kind)
	view.Title = nullStringPtr(title)
	view.CollegeID = nullStringPtr(collegeID)
	view.Media = nullStringPtr(media)
	view.Author = authorSummary(authorID, authorName, authorCollege)
	view.Options = make([]*posts.Option, 0)

	if fcID.Valid {
		view.FirstComment = &posts.CommentView{
			CreatedAt: fcCreatedAt.Time,
			Author:    authorSummary(fuID, fuName, fuCollege),
			ID:        fcID.String,
			PostID:    view.ID,
			AuthorID:  fcAuthorID.String,
			Content:   fcContent.String,
		}
	}

	return &view, nil
}

// loadOptions attaches poll options to the views in one round trip
func loadOptions(ctx context.Context, q queryer, views []*posts.PostView) error {
	byID := make(map[string]*posts.PostView, len(views))
	ids := make([]string, 0, len(views))
	for _, v := range views {
		if v.Kind != posts.KindPoll {
			continue
		}
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := q.QueryContext(ctx, `
		SELECT id, post_id, content, position
		FROM post_options
		WHERE post_id = ANY($1::uuid[])
		ORDER BY post_id, position`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to query poll options: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var opt posts.Option
		if err := rows.Scan(&opt.ID, &opt.PostID, &opt.Content, &opt.Position); err != nil {
			return fmt.Errorf("failed to scan poll option: %w", err)
		}
		if v, ok := byID[opt.PostID]; ok {
			v.Options = append(v.Options, &opt)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating poll options: %w", err)
	}
	return nil
}

func authorSummary(id, name, collegeID sql.NullString) *posts.AuthorSummary {
	if !id.Valid {
		return nil
	}
	return &posts.AuthorSummary{
		CollegeID: nullStringPtr(collegeID),
		ID:        id.String,
		Name:      name.String,
	}
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
