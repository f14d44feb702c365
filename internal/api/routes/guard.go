package routes

import (
	"Peerpulse/internal/api/middleware"

	"github.com/go-chi/chi/v5"
)

// Guard is the middleware every /api/v1 group runs before its handlers
type Guard struct {
	Auth *middleware.AuthMiddleware
	// UserLimiter is charged per authenticated user; nil disables it
	UserLimiter *middleware.RateLimiter
}

// apply authenticates the group and then rate limits by user id
func (g Guard) apply(r chi.Router) {
	r.Use(g.Auth.RequireAuth)
	if g.UserLimiter != nil {
		r.Use(g.UserLimiter.Middleware)
	}
}
