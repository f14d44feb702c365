package routes

import (
	"Peerpulse/internal/api/handlers/user"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers account endpoints
func RegisterUserRoutes(r chi.Router, service users.UserService, guard Guard) {
	currentHandler := user.NewCurrentUserHandler(service)
	listHandler := user.NewListUsersHandler(service)

	r.Route("/api/v1/user", func(r chi.Router) {
		guard.apply(r)

		r.With(middleware.RequireRight(middleware.RightCurrentUser)).Get("/current-user", currentHandler.HandleCurrentUser)

		// Admin only
		r.With(middleware.RequireRight(middleware.RightGetUsers)).Get("/all", listHandler.HandleList)
	})
}
