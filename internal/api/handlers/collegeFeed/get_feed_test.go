package collegeFeed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/collegeFeeds"
	"Peerpulse/internal/core/posts"
	"Peerpulse/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFeedService struct {
	queryFunc func(ctx context.Context, req collegeFeeds.QueryRequest) (*collegeFeeds.FeedResponse, error)
}

func (m *mockFeedService) QueryFeed(ctx context.Context, req collegeFeeds.QueryRequest) (*collegeFeeds.FeedResponse, error) {
	return m.queryFunc(ctx, req)
}

func feedRequest(target, college string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(middleware.SetTestUser(req.Context(), "user-1", college, users.RoleUser))
}

func TestHandleGetFeed_ParsesQuery(t *testing.T) {
	var got collegeFeeds.QueryRequest
	svc := &mockFeedService{queryFunc: func(_ context.Context, req collegeFeeds.QueryRequest) (*collegeFeeds.FeedResponse, error) {
		got = req
		cursor := "p2"
		return &collegeFeeds.FeedResponse{
			Cursor:  &cursor,
			Data:    []*posts.PostView{{ID: "p1"}, {ID: "p2"}},
			HasMore: true,
		}, nil
	}}
	handler := NewGetFeedHandler(svc)

	w := httptest.NewRecorder()
	handler.HandleGetFeed(w, feedRequest("/api/v1/post/feed?search=exam&authorId=u9&kind=poll&sortBy=updatedAt&sortType=ASC&limit=2&cursor=abc&entityId=other", "college-1"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "college-1", got.EntityID)
	require.NotNil(t, got.Search)
	assert.Equal(t, "exam", *got.Search)
	require.NotNil(t, got.Cursor)
	assert.Equal(t, "abc", *got.Cursor)
	require.NotNil(t, got.Filter.AuthorID)
	assert.Equal(t, "u9", *got.Filter.AuthorID)
	require.NotNil(t, got.Filter.Kind)
	assert.Equal(t, "poll", *got.Filter.Kind)
	assert.Equal(t, "updatedAt", got.SortBy)
	assert.Equal(t, "ASC", got.SortType)
	assert.Equal(t, 2, got.Limit)

	var body struct {
		Cursor  *string                  `json:"cursor"`
		Data    []map[string]interface{} `json:"data"`
		HasMore bool                     `json:"hasMore"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Cursor)
	assert.Equal(t, "p2", *body.Cursor)
	assert.Len(t, body.Data, 2)
	assert.True(t, body.HasMore)
}

func TestHandleGetFeed_DefaultsOmittedParams(t *testing.T) {
	var got collegeFeeds.QueryRequest
	svc := &mockFeedService{queryFunc: func(_ context.Context, req collegeFeeds.QueryRequest) (*collegeFeeds.FeedResponse, error) {
		got = req
		return &collegeFeeds.FeedResponse{Data: []*posts.PostView{}}, nil
	}}

	w := httptest.NewRecorder()
	NewGetFeedHandler(svc).HandleGetFeed(w, feedRequest("/api/v1/post/feed?limit=abc&search=", "college-1"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, got.Search)
	assert.Nil(t, got.Cursor)
	assert.Nil(t, got.Filter.AuthorID)
	assert.Zero(t, got.Limit)
	assert.JSONEq(t, `{"cursor":null,"data":[],"hasMore":false}`, w.Body.String())
}

func TestHandleGetFeed_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"invalid cursor", collegeFeeds.ErrInvalidCursor, http.StatusBadRequest, "InvalidCursor"},
		{"no college", collegeFeeds.ErrEntityRequired, http.StatusBadRequest, "InvalidRequest"},
		{"bad sort", collegeFeeds.NewValidationError("sortBy", "sortBy must be createdAt or updatedAt"), http.StatusBadRequest, "InvalidRequest"},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError, "InternalServerError"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockFeedService{queryFunc: func(context.Context, collegeFeeds.QueryRequest) (*collegeFeeds.FeedResponse, error) {
				return nil, tt.err
			}}
			w := httptest.NewRecorder()
			NewGetFeedHandler(svc).HandleGetFeed(w, feedRequest("/api/v1/post/feed", "college-1"))

			assert.Equal(t, tt.wantCode, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body["error"])
		})
	}
}
