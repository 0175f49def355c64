package audit

import "context"

type ListFilter struct {
	Action     string
	EntityType string
	Page       int
	Limit      int
}

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context, f ListFilter) ([]Entry, int64, error)
}
