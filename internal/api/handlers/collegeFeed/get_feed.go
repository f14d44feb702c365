package collegeFeed

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/collegeFeeds"
	"Peerpulse/internal/core/paging"
)

// GetFeedHandler handles college feed retrieval
type GetFeedHandler struct {
	service collegeFeeds.Service
}

// NewGetFeedHandler creates a new feed handler
func NewGetFeedHandler(service collegeFeeds.Service) *GetFeedHandler {
	return &GetFeedHandler{
		service: service,
	}
}

// HandleGetFeed retrieves posts of the caller's college
// GET /api/v1/post/feed?search=...&authorId=...&kind=POLL&sortBy=createdAt&sortType=desc&limit=20&cursor=...
func (h *GetFeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	req := parseRequest(r)

	feed, err := h.service.QueryFeed(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, feed)
}

// parseRequest reads query parameters. The scope always comes from the
// authenticated user; an entityId parameter is ignored.
func parseRequest(r *http.Request) collegeFeeds.QueryRequest {
	q := r.URL.Query()

	return collegeFeeds.QueryRequest{
		Search: paging.OptionalString(q.Get("search")),
		Cursor: paging.OptionalString(q.Get("cursor")),
		Filter: collegeFeeds.Filter{
			AuthorID: paging.OptionalString(q.Get("authorId")),
			Kind:     paging.OptionalString(q.Get("kind")),
		},
		EntityID: middleware.GetCollegeID(r),
		SortBy:   q.Get("sortBy"),
		SortType: q.Get("sortType"),
		Limit:    paging.ParseLimit(q.Get("limit")),
	}
}
