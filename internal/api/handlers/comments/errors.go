package comments

import (
	"errors"
	"log"
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/comments"
	"Peerpulse/internal/core/posts"
)

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, comments.ErrInvalidCursor):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidCursor", "Invalid pagination cursor")
	case errors.Is(err, comments.ErrContentTooLong):
		handlers.WriteError(w, http.StatusBadRequest, "ContentTooLong", err.Error())
	case errors.Is(err, comments.ErrAuthorRequired):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
	case comments.IsValidationError(err), posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		log.Printf("Comment service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
