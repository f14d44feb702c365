package post

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// GetHandler serves single posts
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/v1/post/{postId}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetPostByID(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}
