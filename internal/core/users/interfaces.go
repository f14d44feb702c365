package users

import "context"

// UserRepository defines the data access interface for users
type UserRepository interface {
	// GetByID returns the user or ErrUserNotFound
	GetByID(ctx context.Context, id string) (*User, error)

	// List returns all users ordered by creation time
	List(ctx context.Context) ([]*User, error)
}

// UserService defines the business logic interface for users
type UserService interface {
	GetUserByID(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
}
