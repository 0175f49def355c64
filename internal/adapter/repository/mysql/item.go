package mysql

import (
	"context"

	itemDomain "campusfind-backend/internal/domain/item"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

func (r *ItemRepository) Create(ctx context.Context, it *itemDomain.FoundItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItemRepository) Save(ctx context.Context, it *itemDomain.FoundItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (*itemDomain.FoundItem, error) {
	var out itemDomain.FoundItem
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ItemRepository) GetByItemID(ctx context.Context, itemID string) (*itemDomain.FoundItem, error) {
	var out itemDomain.FoundItem
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&out)
	return &out, res.Error
}

func (r *ItemRepository) GetByItemIDForUpdate(ctx context.Context, itemID string) (*itemDomain.FoundItem, error) {
	var out itemDomain.FoundItem
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("item_id = ?", itemID).
		First(&out)
	return &out, res.Error
}

func (r *ItemRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*itemDomain.FoundItem, error) {
	var out itemDomain.FoundItem
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *ItemRepository) List(ctx context.Context, f itemDomain.ListFilter) ([]itemDomain.FoundItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&itemDomain.FoundItem{})
	if f.PublicOnly {
		q = q.Where("status = ? AND visibility = ?", itemDomain.StatusVerified, true)
	} else if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []itemDomain.FoundItem
	res := q.Order("created_at DESC, id DESC").
		Offset(pageOffset(f.Page, f.Limit)).
		Limit(pageLimit(f.Limit)).
		Find(&out)
	return out, total, res.Error
}
