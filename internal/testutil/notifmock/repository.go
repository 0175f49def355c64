package notifmock

import (
	"context"

	domain "campusfind-backend/internal/domain/notification"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, n *domain.Notification) error
	CreateBatchFn         func(ctx context.Context, ns []domain.Notification) error
	GetByNotificationIDFn func(ctx context.Context, notificationID string) (*domain.Notification, error)
	SaveFn                func(ctx context.Context, n *domain.Notification) error
	ListFn                func(ctx context.Context, f domain.ListFilter) ([]domain.Notification, int64, error)
	MarkAllReadFn         func(ctx context.Context, userID uint64) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ns)
	}
	return nil
}

func (m *Repo) GetByNotificationID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	if m.GetByNotificationIDFn != nil {
		return m.GetByNotificationIDFn(ctx, notificationID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, n *domain.Notification) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, n)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Notification, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}

func (m *Repo) MarkAllRead(ctx context.Context, userID uint64) error {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID)
	}
	return nil
}
