package mysql

import (
	"context"

	claimDomain "campusfind-backend/internal/domain/claim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) GetByClaimID(ctx context.Context, claimID string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).Where("claim_id = ?", claimID).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) GetByClaimIDForUpdate(ctx context.Context, claimID string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("claim_id = ?", claimID).
		First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) GetActiveByItemAndClaimant(ctx context.Context, itemID, claimantID uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("item_id = ? AND claimant_id = ? AND status <> ?", itemID, claimantID, claimDomain.StatusRejected).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) List(ctx context.Context, f claimDomain.ListFilter) ([]claimDomain.ListRow, int64, error) {
	q := r.db.WithContext(ctx).Model(&claimDomain.Claim{})
	if f.ClaimantID != 0 {
		q = q.Where("claims.claimant_id = ?", f.ClaimantID)
	}
	if f.Status != "" {
		q = q.Where("claims.status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []claimDomain.ListRow
	res := q.
		Select("claims.*, found_items.item_id AS item_public_id, found_items.id_type AS item_id_type, profiles.profile_id AS claimant_profile_id, profiles.full_name AS claimant_name").
		Joins("JOIN found_items ON found_items.id = claims.item_id").
		Joins("JOIN profiles ON profiles.id = claims.claimant_id").
		Order("claims.created_at DESC, claims.id DESC").
		Offset(pageOffset(f.Page, f.Limit)).
		Limit(pageLimit(f.Limit)).
		Find(&out)
	return out, total, res.Error
}
