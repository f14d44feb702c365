package user

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/users"
)

// CurrentUserHandler serves the authenticated user's profile
type CurrentUserHandler struct {
	service users.UserService
}

// NewCurrentUserHandler creates a new current user handler
func NewCurrentUserHandler(service users.UserService) *CurrentUserHandler {
	return &CurrentUserHandler{service: service}
}

// HandleCurrentUser handles GET /api/v1/user/current-user
func (h *CurrentUserHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}
