package messages

import "context"

// Service defines the business logic interface for messages
type Service interface {
	// ListMessages returns the messages sent to or by userID, oldest first
	ListMessages(ctx context.Context, userID string) ([]*Message, error)
	SendMessage(ctx context.Context, req SendRequest) (*Message, error)
}

// Repository defines the data access interface for messages
type Repository interface {
	// ListForUser returns messages where userID is sender or recipient
	ListForUser(ctx context.Context, userID string) ([]*Message, error)

	// Create stores the message and assigns its ID
	Create(ctx context.Context, msg *Message) error
}
