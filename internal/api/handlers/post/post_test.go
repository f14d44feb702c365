package post

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/posts"
	"Peerpulse/internal/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPostService implements posts.Service for testing
type mockPostService struct {
	createFunc     func(ctx context.Context, req posts.CreatePostRequest) (*posts.PostView, error)
	createPollFunc func(ctx context.Context, req posts.CreatePollRequest) (*posts.PostView, error)
	getFunc        func(ctx context.Context, id string) (*posts.PostView, error)
}

func (m *mockPostService) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.PostView, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &posts.PostView{ID: "post-1", Content: req.Content, Kind: posts.KindPost}, nil
}

func (m *mockPostService) CreatePoll(ctx context.Context, req posts.CreatePollRequest) (*posts.PostView, error) {
	if m.createPollFunc != nil {
		return m.createPollFunc(ctx, req)
	}
	return &posts.PostView{ID: "poll-1", Kind: posts.KindPoll}, nil
}

func (m *mockPostService) GetPostByID(ctx context.Context, id string) (*posts.PostView, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, posts.ErrNotFound
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.SetTestUser(req.Context(), "user-1", "college-1", users.RoleUser))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleCreate_Success(t *testing.T) {
	var got posts.CreatePostRequest
	svc := &mockPostService{createFunc: func(_ context.Context, req posts.CreatePostRequest) (*posts.PostView, error) {
		got = req
		return &posts.PostView{ID: "post-1", Content: req.Content, Kind: posts.KindPost, Options: []*posts.Option{}}, nil
	}}
	handler := NewCreateHandler(svc)

	body := []byte(`{"title":"Hi","content":"hello","media":"https://cdn.example.com/x.png"}`)
	w := httptest.NewRecorder()
	handler.HandleCreate(w, authedRequest(http.MethodPost, "/api/v1/post", body))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-1", got.AuthorID)
	require.NotNil(t, got.CollegeID)
	assert.Equal(t, "college-1", *got.CollegeID)
	assert.Equal(t, "hello", got.Content)

	var view posts.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "post-1", view.ID)
	assert.Equal(t, posts.KindPost, view.Kind)
}

func TestHandleCreate_InvalidMedia(t *testing.T) {
	handler := NewCreateHandler(&mockPostService{createFunc: func(context.Context, posts.CreatePostRequest) (*posts.PostView, error) {
		t.Fatal("service must not be called")
		return nil, nil
	}})

	w := httptest.NewRecorder()
	handler.HandleCreate(w, authedRequest(http.MethodPost, "/api/v1/post", []byte(`{"content":"x","media":"nope"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "media must be a valid URL", decodeError(t, w)["message"])
}

func TestHandleCreate_MalformedBody(t *testing.T) {
	handler := NewCreateHandler(&mockPostService{})

	w := httptest.NewRecorder()
	handler.HandleCreate(w, authedRequest(http.MethodPost, "/api/v1/post", []byte(`{"content":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidRequest", decodeError(t, w)["error"])
}

func TestHandleCreate_ValidationFromService(t *testing.T) {
	handler := NewCreateHandler(&mockPostService{createFunc: func(context.Context, posts.CreatePostRequest) (*posts.PostView, error) {
		return nil, posts.NewValidationError("content", posts.CodeRequired, "content is required")
	}})

	w := httptest.NewRecorder()
	handler.HandleCreate(w, authedRequest(http.MethodPost, "/api/v1/post", []byte(`{"content":"  "}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, posts.CodeRequired, body["error"])
	assert.Equal(t, "content is required", body["message"])
}

func TestHandleCreatePoll_TooFewOptions(t *testing.T) {
	svc := posts.NewPostService(nil, nil) // validation fails before the repository is touched
	handler := NewCreateHandler(svc)

	w := httptest.NewRecorder()
	handler.HandleCreatePoll(w, authedRequest(http.MethodPost, "/api/v1/post/poll", []byte(`{"content":"Pick","options":["a"]}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, posts.CodeTooFewOptions, decodeError(t, w)["error"])
}

func TestHandleCreatePoll_PassesOptions(t *testing.T) {
	var got posts.CreatePollRequest
	handler := NewCreateHandler(&mockPostService{createPollFunc: func(_ context.Context, req posts.CreatePollRequest) (*posts.PostView, error) {
		got = req
		return &posts.PostView{ID: "poll-1", Kind: posts.KindPoll}, nil
	}})

	body := []byte(`{"content":"Pick","options":["a",{"content":"b"}]}`)
	w := httptest.NewRecorder()
	handler.HandleCreatePoll(w, authedRequest(http.MethodPost, "/api/v1/post/poll", body))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, got.Options, 2)
	assert.Equal(t, "a", got.Options[0].Content)
	assert.Equal(t, "b", got.Options[1].Content)
	assert.Equal(t, "user-1", got.AuthorID)
}

func TestHandleGet(t *testing.T) {
	svc := &mockPostService{getFunc: func(_ context.Context, id string) (*posts.PostView, error) {
		switch id {
		case "post-1":
			return &posts.PostView{ID: "post-1"}, nil
		case "boom":
			return nil, errors.New("db down")
		default:
			return nil, posts.ErrNotFound
		}
	}}
	r := chi.NewRouter()
	r.Get("/api/v1/post/{postId}", NewGetHandler(svc).HandleGet)

	tests := []struct {
		id   string
		want int
	}{
		{"post-1", http.StatusOK},
		{"missing", http.StatusNotFound},
		{"boom", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/v1/post/"+tt.id, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
