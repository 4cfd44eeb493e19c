package repository

import (
	"context"
	"errors"

	"userdir/internal/users/model"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

type UserRepository interface {
	// Initialize indexes, including the unique email index backing duplicate
	// detection under concurrent ingestion
	EnsureIndexes(ctx context.Context) error
	// Create a new user; ErrDuplicate when the email is already taken
	CreateUser(ctx context.Context, user *model.User) error
	// Fetch one user by id
	FindUserByID(ctx context.Context, id string) (*model.User, error)
	// Fetch one user by normalized email
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	// List one page of users with the total count
	ListUsers(ctx context.Context, page, size int) ([]*model.User, int64, error)
	// Delete one user by id
	DeleteUser(ctx context.Context, id string) error
	// Record a registration-mail delivery transition (sent/failed)
	SetNotificationState(ctx context.Context, id, state, lastErr string) error
}
