package like

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/likes"
)

// ToggleHandler handles like toggles
type ToggleHandler struct {
	service likes.Service
}

// NewToggleHandler creates a new toggle handler
func NewToggleHandler(service likes.Service) *ToggleHandler {
	return &ToggleHandler{
		service: service,
	}
}

// HandleToggle likes or unlikes a post for the authenticated user
// POST /api/v1/post/like
//
// Request body:
//
//	{
//	  "postId": "7d9c..."
//	}
//
// Response: the post after the toggle, the outcome message and the new state
func (h *ToggleHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var req likes.ToggleRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}
	if err := handlers.ValidateStruct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	resp, err := h.service.ToggleLike(r.Context(), req.PostID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}
