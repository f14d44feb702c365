package collegeFeed

import (
	"errors"
	"log"
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/collegeFeeds"
)

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *collegeFeeds.ValidationError
	switch {
	case errors.As(err, &valErr):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", valErr.Message)
	case errors.Is(err, collegeFeeds.ErrInvalidCursor):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidCursor", "Invalid pagination cursor")
	default:
		log.Printf("Feed service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
