package post

import (
	"errors"
	"log"
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/posts"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *posts.ValidationError
	switch {
	case errors.As(err, &valErr):
		handlers.WriteError(w, http.StatusBadRequest, errorCode(valErr), valErr.Message)
	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	default:
		log.Printf("post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}

func errorCode(valErr *posts.ValidationError) string {
	if valErr.Code == "" {
		return "InvalidRequest"
	}
	return valErr.Code
}
