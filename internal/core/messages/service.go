package messages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

type messageService struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewMessageService creates a new message service
func NewMessageService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &messageService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *messageService) ListMessages(ctx context.Context, userID string) ([]*Message, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewValidationError("user", "user is required")
	}

	msgs, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if msgs == nil {
		msgs = make([]*Message, 0)
	}
	return msgs, nil
}

func (s *messageService) SendMessage(ctx context.Context, req SendRequest) (*Message, error) {
	if strings.TrimSpace(req.From) == "" {
		return nil, NewValidationError("from", "sender is required")
	}
	if strings.TrimSpace(req.To) == "" {
		return nil, NewValidationError("to", "recipient is required")
	}
	body := strings.TrimSpace(req.Message)
	if body == "" {
		return nil, NewValidationError("message", "message is required")
	}
	if utf8.RuneCountInString(body) > MaxMessageLength {
		return nil, NewValidationError("message", fmt.Sprintf("message exceeds %d characters", MaxMessageLength))
	}

	sentAt := strings.TrimSpace(req.Time)
	if sentAt == "" {
		sentAt = s.now().UTC().Format(time.RFC3339)
	}

	msg := &Message{
		To:      req.To,
		From:    req.From,
		Message: body,
		Time:    sentAt,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	s.logger.Debug("message sent", "id", msg.ID, "from", msg.From, "to", msg.To)
	return msg, nil
}
