package like

import (
	"errors"
	"log"
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/core/likes"
	"Peerpulse/internal/core/posts"
)

// handleServiceError maps like service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, likes.ErrLikeConflict):
		handlers.WriteError(w, http.StatusConflict, "LikeConflict", "Like was changed by another request, please retry")
	case errors.Is(err, likes.ErrUserRequired):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		log.Printf("Like service error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
