package notification

import "context"

type ListFilter struct {
	UserID     uint64
	UnreadOnly bool
	Page       int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	CreateBatch(ctx context.Context, ns []Notification) error
	GetByNotificationID(ctx context.Context, notificationID string) (*Notification, error)
	Save(ctx context.Context, n *Notification) error
	List(ctx context.Context, f ListFilter) ([]Notification, int64, error)
	MarkAllRead(ctx context.Context, userID uint64) error
}
