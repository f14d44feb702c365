package comments

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// CreateHandler adds comments to posts
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/v1/post/{postId}/comments
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req comments.CreateCommentRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}
	if err := handlers.ValidateStruct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	req.PostID = chi.URLParam(r, "postId")
	req.AuthorID = middleware.GetUserID(r)

	comment, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}
