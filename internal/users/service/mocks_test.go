package service_test

import (
	"context"
	"sync"

	"userdir/internal/users/model"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, page, size int) ([]*model.User, int64, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) SetNotificationState(ctx context.Context, id, state, lastErr string) error {
	args := m.Called(ctx, id, state, lastErr)
	return args.Error(0)
}

// recordingNotifier captures enqueued users without delivering anything.
type recordingNotifier struct {
	mu    sync.Mutex
	users []*model.User
}

func (n *recordingNotifier) Enqueue(user *model.User) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, user)
}

func (n *recordingNotifier) Enqueued() []*model.User {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*model.User(nil), n.users...)
}
