package messages

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/messages"
)

// SendHandler stores direct messages
type SendHandler struct {
	service messages.Service
}

// NewSendHandler creates a new send handler
func NewSendHandler(service messages.Service) *SendHandler {
	return &SendHandler{service: service}
}

// HandleSend handles POST /api/v1/messages
// The sender is always the authenticated user
func (h *SendHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req messages.SendRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}
	if err := handlers.ValidateStruct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	req.From = middleware.GetUserID(r)

	msg, err := h.service.SendMessage(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, msg)
}
