package submissionmock

import (
	"context"

	domain "campusfind-backend/internal/domain/submission"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, s *domain.Submission) error
	GetBySubmissionIDFn          func(ctx context.Context, submissionID string) (*domain.Submission, error)
	GetBySubmissionIDForUpdateFn func(ctx context.Context, submissionID string) (*domain.Submission, error)
	SaveFn                       func(ctx context.Context, s *domain.Submission) error
	ListFn                       func(ctx context.Context, f domain.ListFilter) ([]domain.Submission, int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySubmissionID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDFn != nil {
		return m.GetBySubmissionIDFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*domain.Submission, error) {
	if m.GetBySubmissionIDForUpdateFn != nil {
		return m.GetBySubmissionIDForUpdateFn(ctx, submissionID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, s *domain.Submission) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Submission, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}
