package lostrequest

import "context"

type ListFilter struct {
	// UserID of 0 means all users (admin listing).
	UserID uint64
	Status Status
	Page   int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, r *LostRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LostRequest, error)
	Save(ctx context.Context, r *LostRequest) error
	Delete(ctx context.Context, r *LostRequest) error
	List(ctx context.Context, f ListFilter) ([]LostRequest, int64, error)
}
