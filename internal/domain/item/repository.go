package item

import "context"

// ListFilter narrows List; zero values mean "no filter".
type ListFilter struct {
	Status Status
	// PublicOnly restricts to verified AND visible rows (non-admin view).
	PublicOnly bool
	Page       int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, it *FoundItem) error
	GetByID(ctx context.Context, id uint64) (*FoundItem, error)
	GetByItemID(ctx context.Context, itemID string) (*FoundItem, error)
	// GetByItemIDForUpdate locks the row inside the surrounding transaction.
	GetByItemIDForUpdate(ctx context.Context, itemID string) (*FoundItem, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*FoundItem, error)
	Save(ctx context.Context, it *FoundItem) error
	List(ctx context.Context, f ListFilter) ([]FoundItem, int64, error)
}
