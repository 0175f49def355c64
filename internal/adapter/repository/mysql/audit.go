package mysql

import (
	"context"

	auditDomain "campusfind-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) List(ctx context.Context, f auditDomain.ListFilter) ([]auditDomain.Entry, int64, error) {
	q := r.db.WithContext(ctx).Model(&auditDomain.Entry{})
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []auditDomain.Entry
	res := q.Order("id DESC").
		Offset(pageOffset(f.Page, f.Limit)).
		Limit(pageLimit(f.Limit)).
		Find(&out)
	return out, total, res.Error
}
