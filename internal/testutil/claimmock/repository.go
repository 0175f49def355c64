package claimmock

import (
	"context"

	domain "campusfind-backend/internal/domain/claim"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, c *domain.Claim) error
	GetByClaimIDFn               func(ctx context.Context, claimID string) (*domain.Claim, error)
	GetByClaimIDForUpdateFn      func(ctx context.Context, claimID string) (*domain.Claim, error)
	GetActiveByItemAndClaimantFn func(ctx context.Context, itemID, claimantID uint64) (*domain.Claim, error)
	SaveFn                       func(ctx context.Context, c *domain.Claim) error
	ListFn                       func(ctx context.Context, f domain.ListFilter) ([]domain.ListRow, int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClaimID(ctx context.Context, claimID string) (*domain.Claim, error) {
	if m.GetByClaimIDFn != nil {
		return m.GetByClaimIDFn(ctx, claimID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByClaimIDForUpdate(ctx context.Context, claimID string) (*domain.Claim, error) {
	if m.GetByClaimIDForUpdateFn != nil {
		return m.GetByClaimIDForUpdateFn(ctx, claimID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByItemAndClaimant(ctx context.Context, itemID, claimantID uint64) (*domain.Claim, error) {
	if m.GetActiveByItemAndClaimantFn != nil {
		return m.GetActiveByItemAndClaimantFn(ctx, itemID, claimantID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.ListRow, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
