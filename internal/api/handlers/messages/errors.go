package messages

import (
	"errors"
	"log"
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/messages"
)

// handleServiceError maps message service errors to HTTP responses.
// Store failures are 500, never 404.
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *messages.ValidationError
	switch {
	case errors.As(err, &valErr):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", valErr.Message)
	default:
		log.Printf("Message service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
