package profilemock

import (
	"context"

	domain "campusfind-backend/internal/domain/profile"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Profile) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Profile, error)
	GetByProfileIDFn func(ctx context.Context, profileID string) (*domain.Profile, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.Profile, error)
	SaveFn           func(ctx context.Context, p *domain.Profile) error
	ListActiveFn     func(ctx context.Context) ([]domain.Profile, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Profile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByProfileID(ctx context.Context, profileID string) (*domain.Profile, error) {
	if m.GetByProfileIDFn != nil {
		return m.GetByProfileIDFn(ctx, profileID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Profile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.Profile, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, context.Canceled
}
