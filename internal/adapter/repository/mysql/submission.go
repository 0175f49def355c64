package mysql

import (
	"context"

	submissionDomain "campusfind-backend/internal/domain/submission"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) Save(ctx context.Context, s *submissionDomain.Submission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SubmissionRepository) GetBySubmissionID(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).Where("submission_id = ?", submissionID).First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
	var out submissionDomain.Submission
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("submission_id = ?", submissionID).
		First(&out)
	return &out, res.Error
}

func (r *SubmissionRepository) List(ctx context.Context, f submissionDomain.ListFilter) ([]submissionDomain.Submission, int64, error) {
	q := r.db.WithContext(ctx).Model(&submissionDomain.Submission{})
	if f.Reviewed != nil {
		if *f.Reviewed {
			q = q.Where("reviewed_by IS NOT NULL")
		} else {
			q = q.Where("reviewed_by IS NULL")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []submissionDomain.Submission
	res := q.Order("created_at DESC, id DESC").
		Offset(pageOffset(f.Page, f.Limit)).
		Limit(pageLimit(f.Limit)).
		Find(&out)
	return out, total, res.Error
}
