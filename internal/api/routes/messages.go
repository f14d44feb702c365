package routes

import (
	messagehandlers "Peerpulse/internal/api/handlers/messages"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/messages"

	"github.com/go-chi/chi/v5"
)

// RegisterMessageRoutes registers direct message endpoints.
// Only mounted when a message store is configured.
func RegisterMessageRoutes(r chi.Router, service messages.Service, guard Guard) {
	listHandler := messagehandlers.NewListHandler(service)
	sendHandler := messagehandlers.NewSendHandler(service)

	r.Route("/api/v1/messages", func(r chi.Router) {
		guard.apply(r)

		r.Get("/", listHandler.HandleList)
		r.With(middleware.RequireRight(middleware.RightSendMessage)).Post("/", sendHandler.HandleSend)
	})
}
