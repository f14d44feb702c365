package messages

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/messages"
)

// ListHandler serves the caller's conversation history
type ListHandler struct {
	service messages.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service messages.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/v1/messages
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListMessages(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}
