package user

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/users"
)

// ListUsersHandler lists every account for administrators
type ListUsersHandler struct {
	service users.UserService
}

// NewListUsersHandler creates a new list handler
func NewListUsersHandler(service users.UserService) *ListUsersHandler {
	return &ListUsersHandler{service: service}
}

// HandleList handles GET /api/v1/user/all
func (h *ListUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}
