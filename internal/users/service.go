package users

import (
	"context"
	"errors"

	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
)

// CreateResult reports the outcome of an account creation.
type CreateResult struct {
	ID      string
	Created bool
}

// Service handles account business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers an account if none exists for the email. Creation is
// first-write-wins: the role on a duplicate create is silently ignored.
func (s *Service) Create(ctx context.Context, email, role string) (CreateResult, error) {
	if role == "" {
		role = RoleStandard
	}
	id, created, err := s.repo.Create(ctx, email, role)
	if err != nil {
		return CreateResult{}, err
	}
	return CreateResult{ID: id, Created: created}, nil
}

// FindByEmail returns the account for an email, or httpx.ErrNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*Account, error) {
	return s.repo.FindByEmail(ctx, email)
}

// ListAll returns every account.
func (s *Service) ListAll(ctx context.Context) ([]Account, error) {
	return s.repo.ListAll(ctx)
}

// RoleOf returns the role held by the account identified by email, or the
// empty string when no account exists. A missing account is not an error.
func (s *Service) RoleOf(ctx context.Context, email string) (string, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return account.Role, nil
}

// HasRole reports whether the account identified by email holds the given
// role.
func (s *Service) HasRole(ctx context.Context, email, role string) (bool, error) {
	held, err := s.RoleOf(ctx, email)
	if err != nil {
		return false, err
	}
	return held != "" && held == role, nil
}
