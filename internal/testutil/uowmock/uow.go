package uowmock

import (
	"context"
	"errors"

	"campusfind-backend/internal/domain/item"
	"campusfind-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinItemTxFn func(ctx context.Context, itemID string, fn func(r uow.Repos, it *item.FoundItem) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that runs callbacks directly against the given
// repos, with no transaction semantics. The item handed to WithinItemTx is
// fetched through r.Items.GetByItemIDForUpdate.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinItemTxFn: func(ctx context.Context, itemID string, fn func(uow.Repos, *item.FoundItem) error) error {
			it, err := r.Items.GetByItemIDForUpdate(ctx, itemID)
			if err != nil {
				return err
			}
			return fn(r, it)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinItemTx(ctx context.Context, itemID string, fn func(r uow.Repos, it *item.FoundItem) error) error {
	if m.WithinItemTxFn != nil {
		return m.WithinItemTxFn(ctx, itemID, fn)
	}
	return errUnimplemented
}
