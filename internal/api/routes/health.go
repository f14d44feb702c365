package routes

import (
	"context"
	"net/http"
	"time"

	"Peerpulse/internal/api/handlers"

	"github.com/go-chi/chi/v5"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterHealthRoutes registers GET /health
func RegisterHealthRoutes(r chi.Router, db Pinger) {
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				handlers.WriteError(w, http.StatusServiceUnavailable, "DatabaseUnavailable", "Database is unreachable")
				return
			}
		}
		handlers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}
