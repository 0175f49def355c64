package profile

import "context"

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uint64) (*Profile, error)
	GetByProfileID(ctx context.Context, profileID string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	// ListActive returns all non-deleted profiles (broadcast fan-out).
	ListActive(ctx context.Context) ([]Profile, error)
}
