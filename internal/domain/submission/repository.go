package submission

import "context"

type ListFilter struct {
	// Reviewed filters on review state when non-nil.
	Reviewed *bool
	Page     int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetBySubmissionID(ctx context.Context, submissionID string) (*Submission, error)
	GetBySubmissionIDForUpdate(ctx context.Context, submissionID string) (*Submission, error)
	Save(ctx context.Context, s *Submission) error
	List(ctx context.Context, f ListFilter) ([]Submission, int64, error)
}
