package mysql

import (
	"context"

	requestDomain "campusfind-backend/internal/domain/lostrequest"

	"gorm.io/gorm"
)

type LostRequestRepository struct{ db *gorm.DB }

func NewLostRequestRepository(db *gorm.DB) *LostRequestRepository {
	return &LostRequestRepository{db: db}
}

func (r *LostRequestRepository) Create(ctx context.Context, lr *requestDomain.LostRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *LostRequestRepository) Save(ctx context.Context, lr *requestDomain.LostRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

func (r *LostRequestRepository) Delete(ctx context.Context, lr *requestDomain.LostRequest) error {
	return r.db.WithContext(ctx).Delete(lr).Error
}

func (r *LostRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.LostRequest, error) {
	var out requestDomain.LostRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *LostRequestRepository) List(ctx context.Context, f requestDomain.ListFilter) ([]requestDomain.LostRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&requestDomain.LostRequest{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []requestDomain.LostRequest
	res := q.Order("created_at DESC, id DESC").
		Offset(pageOffset(f.Page, f.Limit)).
		Limit(pageLimit(f.Limit)).
		Find(&out)
	return out, total, res.Error
}
