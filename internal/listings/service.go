package listings

import (
	"context"

	"github.com/google/uuid"

	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
)

// Service handles listing business logic.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new listing owned by the given email.
func (s *Service) Create(ctx context.Context, f Fields, ownerEmail string) (*Listing, error) {
	return s.repo.Create(ctx, f, ownerEmail)
}

// ListAll returns every listing.
func (s *Service) ListAll(ctx context.Context) ([]Listing, error) {
	return s.repo.ListAll(ctx)
}

// ListByOwner returns the listings created by the given identity.
func (s *Service) ListByOwner(ctx context.Context, email string) ([]Listing, error) {
	return s.repo.ListByOwner(ctx, email)
}

// GetByID fetches one listing. A malformed identifier is indistinguishable
// from an unknown one: both are not found.
func (s *Service) GetByID(ctx context.Context, rawID string) (*Listing, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, httpx.ErrNotFound
	}
	return s.repo.GetByID(ctx, id.String())
}

// ReplaceByID overwrites the replaceable fields of a listing and reports
// the matched row count. Zero matches reports zero, not an error.
func (s *Service) ReplaceByID(ctx context.Context, rawID string, f Fields) (int64, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return 0, httpx.ErrNotFound
	}
	return s.repo.ReplaceByID(ctx, id.String(), f)
}

// DeleteByID removes a listing and reports the deleted row count.
func (s *Service) DeleteByID(ctx context.Context, rawID string) (int64, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return 0, httpx.ErrNotFound
	}
	return s.repo.DeleteByID(ctx, id.String())
}
