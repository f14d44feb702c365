package post

import (
	"net/http"

	"Peerpulse/internal/api/handlers"
	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/posts"
)

// CreatePollInput is the body of POST /api/v1/post/poll
type CreatePollInput struct {
	Title   *string             `json:"title,omitempty" validate:"omitempty,max=300"`
	Media   *string             `json:"media,omitempty" validate:"omitempty,url"`
	Content string              `json:"content"`
	Options []posts.OptionInput `json:"options"`
}

// HandleCreatePoll handles POST /api/v1/post/poll
// Option count is checked by the service before content
func (h *CreateHandler) HandleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var input CreatePollInput
	if !handlers.DecodeJSON(w, r, &input) {
		return
	}
	if err := handlers.ValidateStruct(input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	view, err := h.service.CreatePoll(r.Context(), posts.CreatePollRequest{
		Title:     input.Title,
		Media:     input.Media,
		CollegeID: collegeOf(r),
		Content:   input.Content,
		AuthorID:  middleware.GetUserID(r),
		Options:   input.Options,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, view)
}
