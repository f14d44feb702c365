package comments

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/comments"
	"Peerpulse/internal/core/paging"

	"github.com/go-chi/chi/v5"
)

// ListHandler serves the comments of a post
type ListHandler struct {
	service comments.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service comments.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/v1/post/{postId}/comments?limit=20&cursor=...
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.service.ListForPost(r.Context(), comments.ListRequest{
		Cursor: paging.OptionalString(q.Get("cursor")),
		PostID: chi.URLParam(r, "postId"),
		Limit:  paging.ParseLimit(q.Get("limit")),
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}
