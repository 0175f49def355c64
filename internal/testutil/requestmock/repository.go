package requestmock

import (
	"context"

	domain "campusfind-backend/internal/domain/lostrequest"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, r *domain.LostRequest) error
	GetByRequestIDFn func(ctx context.Context, requestID string) (*domain.LostRequest, error)
	SaveFn           func(ctx context.Context, r *domain.LostRequest) error
	DeleteFn         func(ctx context.Context, r *domain.LostRequest) error
	ListFn           func(ctx context.Context, f domain.ListFilter) ([]domain.LostRequest, int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.LostRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LostRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.LostRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, r *domain.LostRequest) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, r)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.LostRequest, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
