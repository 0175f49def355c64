package claim

import "context"

type ListFilter struct {
	// ClaimantID of 0 means all claimants (admin listing).
	ClaimantID uint64
	Status     Status
	Page       int
	Limit      int
}

// ListRow is a claim joined with its item and claimant for listings.
type ListRow struct {
	Claim
	ItemPublicID      string `gorm:"column:item_public_id"`
	ItemIDType        string `gorm:"column:item_id_type"`
	ClaimantProfileID string `gorm:"column:claimant_profile_id"`
	ClaimantName      string `gorm:"column:claimant_name"`
}

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByClaimID(ctx context.Context, claimID string) (*Claim, error)
	GetByClaimIDForUpdate(ctx context.Context, claimID string) (*Claim, error)
	// GetActiveByItemAndClaimant finds a non-rejected claim for the pair.
	GetActiveByItemAndClaimant(ctx context.Context, itemID, claimantID uint64) (*Claim, error)
	Save(ctx context.Context, c *Claim) error
	List(ctx context.Context, f ListFilter) ([]ListRow, int64, error)
}
