package itemmock

import (
	"context"

	domain "campusfind-backend/internal/domain/item"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn               func(ctx context.Context, it *domain.FoundItem) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.FoundItem, error)
	GetByItemIDFn          func(ctx context.Context, itemID string) (*domain.FoundItem, error)
	GetByItemIDForUpdateFn func(ctx context.Context, itemID string) (*domain.FoundItem, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.FoundItem, error)
	SaveFn                 func(ctx context.Context, it *domain.FoundItem) error
	ListFn                 func(ctx context.Context, f domain.ListFilter) ([]domain.FoundItem, int64, error)
}

func (m *Repo) Create(ctx context.Context, it *domain.FoundItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, it)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.FoundItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByItemID(ctx context.Context, itemID string) (*domain.FoundItem, error) {
	if m.GetByItemIDFn != nil {
		return m.GetByItemIDFn(ctx, itemID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByItemIDForUpdate(ctx context.Context, itemID string) (*domain.FoundItem, error) {
	if m.GetByItemIDForUpdateFn != nil {
		return m.GetByItemIDForUpdateFn(ctx, itemID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.FoundItem, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, it *domain.FoundItem) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, it)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.FoundItem, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
