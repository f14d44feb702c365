package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/core/messages"
	"Peerpulse/internal/core/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMessageService struct {
	listFunc func(ctx context.Context, userID string) ([]*messages.Message, error)
	sendFunc func(ctx context.Context, req messages.SendRequest) (*messages.Message, error)
}

func (m *mockMessageService) ListMessages(ctx context.Context, userID string) ([]*messages.Message, error) {
	return m.listFunc(ctx, userID)
}

func (m *mockMessageService) SendMessage(ctx context.Context, req messages.SendRequest) (*messages.Message, error) {
	return m.sendFunc(ctx, req)
}

func asUser(req *http.Request, id string) *http.Request {
	return req.WithContext(middleware.SetTestUser(req.Context(), id, "college-1", users.RoleUser))
}

func TestHandleSend_SenderFromToken(t *testing.T) {
	var got messages.SendRequest
	svc := &mockMessageService{sendFunc: func(_ context.Context, req messages.SendRequest) (*messages.Message, error) {
		got = req
		return &messages.Message{ID: "m1", To: req.To, From: req.From, Message: req.Message, Time: "2026-01-02T03:04:05Z"}, nil
	}}

	body := strings.NewReader(`{"to":"user-2","from":"someone-else","message":"hi"}`)
	w := httptest.NewRecorder()
	NewSendHandler(svc).HandleSend(w, asUser(httptest.NewRequest(http.MethodPost, "/api/v1/messages", body), "user-1"))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user-1", got.From)
	assert.Equal(t, "user-2", got.To)

	var msg messages.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "m1", msg.ID)
}

func TestHandleSend_MissingRecipient(t *testing.T) {
	svc := &mockMessageService{sendFunc: func(context.Context, messages.SendRequest) (*messages.Message, error) {
		t.Fatal("service must not be called")
		return nil, nil
	}}

	w := httptest.NewRecorder()
	NewSendHandler(svc).HandleSend(w, asUser(httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(`{"message":"hi"}`)), "user-1"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "to is required")
}

func TestHandleList(t *testing.T) {
	svc := &mockMessageService{listFunc: func(_ context.Context, userID string) ([]*messages.Message, error) {
		if userID == "broken" {
			return nil, errors.New("mongo unavailable")
		}
		return []*messages.Message{{ID: "m1", To: userID}}, nil
	}}
	handler := NewListHandler(svc)

	w := httptest.NewRecorder()
	handler.HandleList(w, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil), "user-1"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"m1"`)

	w = httptest.NewRecorder()
	handler.HandleList(w, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil), "broken"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
