package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

type Type string

const (
	TypeClaimUpdate      Type = "claim_update"
	TypeRequestUpdate    Type = "request_update"
	TypeSubmissionUpdate Type = "submission_update"
	TypeBroadcast        Type = "broadcast"
)

// Table: notifications
type Notification struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	NotificationID string    `gorm:"column:notification_id;type:char(32);not null;uniqueIndex:ux_notifications_notification_id"`
	UserID         uint64    `gorm:"column:user_id;not null;index:idx_notifications_user"`
	Title          string    `gorm:"column:title;size:150;not null"`
	Message        string    `gorm:"column:message;type:text;not null"`
	Type           Type      `gorm:"column:type;type:enum('claim_update','request_update','submission_update','broadcast');default:'broadcast'"`
	IsRead         bool      `gorm:"column:is_read;not null;default:false;index:idx_notifications_read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Notification) TableName() string { return "notifications" }
