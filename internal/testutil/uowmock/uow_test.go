package uowmock

import (
	"context"
	"errors"
	"testing"

	itemDomain "campusfind-backend/internal/domain/item"
	"campusfind-backend/internal/domain/uow"
	"campusfind-backend/internal/testutil/claimmock"
	"campusfind-backend/internal/testutil/itemmock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	items := &itemmock.Repo{}
	claims := &claimmock.Repo{}
	repos := uow.Repos{Items: items, Claims: claims}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			if fn == nil {
				t.Fatalf("WithinTx: fn is nil")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Items != items || r.Claims != claims {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	sentinel := errors.New("boom")

	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(context.Background(), func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := New()

	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinItemTx(ctx, "x", func(uow.Repos, *itemDomain.FoundItem) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinItemTx default: want errUnimplemented, got %v", err)
	}
}

func TestUoW_WithinItemTx_Happy(t *testing.T) {
	ctx := context.Background()

	items := &itemmock.Repo{}
	repos := uow.Repos{Items: items}
	locked := &itemDomain.FoundItem{ID: 42, ItemID: "aaaa"}

	innerCalled := false
	m := &UoW{
		WithinItemTxFn: func(gotCtx context.Context, itemID string, fn func(r uow.Repos, it *itemDomain.FoundItem) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinItemTx: ctx mismatch")
			}
			if itemID != "aaaa" {
				t.Fatalf("WithinItemTx: itemID mismatch, got %s", itemID)
			}
			return fn(repos, locked)
		},
	}

	err := m.WithinItemTx(ctx, "aaaa", func(r uow.Repos, it *itemDomain.FoundItem) error {
		innerCalled = true
		if r.Items != items {
			t.Fatalf("WithinItemTx: repos not forwarded")
		}
		if it != locked {
			t.Fatalf("WithinItemTx: item not forwarded: %+v", it)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinItemTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinItemTx: inner fn not called")
	}
}

func TestUoW_Passthrough(t *testing.T) {
	ctx := context.Background()

	locked := &itemDomain.FoundItem{ID: 42, ItemID: "aaaa"}
	items := &itemmock.Repo{
		GetByItemIDForUpdateFn: func(ctx context.Context, itemID string) (*itemDomain.FoundItem, error) {
			if itemID != "aaaa" {
				t.Fatalf("Passthrough: itemID mismatch, got %s", itemID)
			}
			return locked, nil
		},
	}
	repos := uow.Repos{Items: items}
	m := Passthrough(repos)

	if err := m.WithinTx(ctx, func(r uow.Repos) error {
		if r.Items != items {
			t.Fatalf("Passthrough WithinTx: repos mismatch")
		}
		return nil
	}); err != nil {
		t.Fatalf("Passthrough WithinTx: %v", err)
	}

	if err := m.WithinItemTx(ctx, "aaaa", func(r uow.Repos, it *itemDomain.FoundItem) error {
		if it != locked {
			t.Fatalf("Passthrough WithinItemTx: item mismatch: %+v", it)
		}
		return nil
	}); err != nil {
		t.Fatalf("Passthrough WithinItemTx: %v", err)
	}

	// missing item short-circuits before the callback
	items.GetByItemIDForUpdateFn = nil // nil getter → context.Canceled
	if err := m.WithinItemTx(ctx, "aaaa", func(uow.Repos, *itemDomain.FoundItem) error {
		t.Fatalf("callback should not run when item lookup fails")
		return nil
	}); err == nil {
		t.Fatalf("expected error from failed item lookup")
	}
}

func TestUoW_Reset(t *testing.T) {
	m := New()
	m.WithinTxFn = func(context.Context, func(uow.Repos) error) error { return nil }
	m.WithinItemTxFn = func(context.Context, string, func(uow.Repos, *itemDomain.FoundItem) error) error { return nil }

	m.Reset()
	if m.WithinTxFn != nil || m.WithinItemTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
