package postgres

import (
	"strings"
	"testing"
	"time"

	"Peerpulse/internal/core/collegeFeeds"
	"Peerpulse/internal/core/posts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFeedQuery_Minimal(t *testing.T) {
	query, args, err := buildFeedQuery(collegeFeeds.FindPostsQuery{
		EntityID:   "college-1",
		SortBy:     collegeFeeds.SortByCreatedAt,
		Descending: true,
		Limit:      11,
	}, nil)

	require.NoError(t, err)
	assert.Contains(t, query, "p.college_id = $1 AND p.is_deleted = FALSE")
	assert.Contains(t, query, "ORDER BY p.created_at DESC, p.id DESC")
	assert.Contains(t, query, "LIMIT $2")
	assert.NotContains(t, query, "ILIKE")
	assert.Equal(t, []any{"college-1", 11}, args)
}

func TestBuildFeedQuery_AllPredicates(t *testing.T) {
	author := "author-1"
	kind := posts.KindPoll
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildFeedQuery(collegeFeeds.FindPostsQuery{
		EntityID: "college-1",
		AuthorID: &author,
		Kind:     &kind,
		Search:   "50%_off",
		SortBy:   collegeFeeds.SortByUpdatedAt,
		Limit:    3,
	}, &feedCursor{sortValue: at, id: "0b7d8a56-7d8e-4a7e-9f0e-2b3c4d5e6f70"})

	require.NoError(t, err)
	assert.Contains(t, query, "p.author_id = $2")
	assert.Contains(t, query, "p.kind = $3")
	assert.Contains(t, query, `(p.title ILIKE $4 ESCAPE '\' OR p.content ILIKE $4 ESCAPE '\')`)
	assert.Contains(t, query, "(p.updated_at, p.id) > ($5, $6::uuid)")
	assert.Contains(t, query, "ORDER BY p.updated_at ASC, p.id ASC")
	assert.Contains(t, query, "LIMIT $7")
	require.Len(t, args, 7)
	assert.Equal(t, `%50\%\_off%`, args[3])
	assert.Equal(t, at, args[4])
	assert.Equal(t, 3, args[6])
}

func TestBuildFeedQuery_DescendingCursorComparesLess(t *testing.T) {
	query, _, err := buildFeedQuery(collegeFeeds.FindPostsQuery{
		EntityID:   "c",
		SortBy:     collegeFeeds.SortByCreatedAt,
		Descending: true,
		Limit:      1,
	}, &feedCursor{sortValue: time.Now(), id: "x"})

	require.NoError(t, err)
	assert.Contains(t, query, "(p.created_at, p.id) < ($2, $3::uuid)")
}

func TestBuildFeedQuery_RejectsUnknownSort(t *testing.T) {
	_, _, err := buildFeedQuery(collegeFeeds.FindPostsQuery{
		EntityID: "c",
		SortBy:   "likes; DROP TABLE posts",
		Limit:    1,
	}, nil)

	assert.Error(t, err)
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `a\\b`, likeEscaper.Replace(`a\b`))
	assert.Equal(t, `100\%`, likeEscaper.Replace(`100%`))
	assert.Equal(t, `snake\_case`, likeEscaper.Replace(`snake_case`))
	assert.Equal(t, "plain", likeEscaper.Replace("plain"))
}

func TestPostViewSQL_SharedFragments(t *testing.T) {
	// Scan order in scanPostView depends on this column list
	assert.Equal(t, 22, len(strings.Split(postViewColumns, ",")))
	assert.Contains(t, postViewJoins, "LEFT JOIN LATERAL")
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("0b7d8a56-7d8e-4a7e-9f0e-2b3c4d5e6f70"))
	assert.False(t, isUUID("not-a-uuid"))
	assert.False(t, isUUID(""))
}
