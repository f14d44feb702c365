package post

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/posts"
)

// CreatePostInput is the body of POST /api/v1/post
type CreatePostInput struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=300"`
	Media   *string `json:"media,omitempty" validate:"omitempty,url"`
	Content string  `json:"content"`
}

// CreateHandler handles post and poll creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/v1/post
// Author and college come from the authenticated user, never from the body
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input CreatePostInput
	if !handlers.DecodeJSON(w, r, &input) {
		return
	}
	if err := handlers.ValidateStruct(input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	view, err := h.service.CreatePost(r.Context(), posts.CreatePostRequest{
		Title:     input.Title,
		Media:     input.Media,
		CollegeID: collegeOf(r),
		Content:   input.Content,
		AuthorID:  middleware.GetUserID(r),
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, view)
}

func collegeOf(r *http.Request) *string {
	college := middleware.GetCollegeID(r)
	if college == "" {
		return nil
	}
	return &college
}
