package service

import (
	"context"
	"errors"

	"userdir/internal/users/model"
	"userdir/internal/users/repository"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrConflict   = errors.New("conflict: email already registered")
	ErrBadRequest = errors.New("bad request")
	ErrImport     = errors.New("import failed")
)

// Notifier hands a created user to asynchronous registration-mail delivery.
type Notifier interface {
	Enqueue(user *model.User)
}

type UserService interface {
	CreateUser(ctx context.Context, candidate model.CandidateRecord) (*model.BatchOutcome, error)
	Ingest(ctx context.Context, batch []model.CandidateRecord) ([]model.BatchOutcome, error)
	ImportUsers(ctx context.Context, data []byte) ([]model.BatchOutcome, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context, page model.PageRequest) (*model.UserPage, error)
	DeleteUser(ctx context.Context, id string) error
}

type Service struct {
	Repo     repository.UserRepository
	Notifier Notifier
}

func NewService(repo repository.UserRepository, notifier Notifier) *Service {
	return &Service{Repo: repo, Notifier: notifier}
}

// CreateUser runs a single candidate through the ingestion pipeline as a
// batch of one and returns its outcome.
func (s *Service) CreateUser(ctx context.Context, candidate model.CandidateRecord) (*model.BatchOutcome, error) {
	outcomes, err := s.Ingest(ctx, []model.CandidateRecord{candidate})
	if err != nil {
		return nil, err
	}
	return &outcomes[0], nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.Repo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, page model.PageRequest) (*model.UserPage, error) {
	page.Normalize()

	users, total, err := s.Repo.ListUsers(ctx, page.Page, page.Size)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*model.User{}
	}
	return &model.UserPage{
		Users: users,
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
	}, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	err := s.Repo.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
