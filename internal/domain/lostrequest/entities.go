package lostrequest

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("lost request not found")
	ErrNotEditable         = errors.New("lost request can no longer be edited by its owner")
	ErrNotDeletable        = errors.New("lost request can no longer be deleted")
	ErrInvalidTransition   = errors.New("invalid lost request status transition")
	ErrMatchedItemRequired = errors.New("matched_item_id is required to mark a request matched")
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusMatched   Status = "matched"
	StatusClosed    Status = "closed"
)

var transitions = map[Status][]Status{
	StatusSubmitted: {StatusMatched, StatusClosed},
	StatusMatched:   {StatusClosed},
	StatusClosed:    {},
}

func CanTransition(cur, next Status) bool {
	for _, s := range transitions[cur] {
		if s == next {
			return true
		}
	}
	return false
}

// Table: lost_requests
type LostRequest struct {
	ID                 uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	RequestID          string         `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_lost_requests_request_id"`
	UserID             uint64         `gorm:"column:user_id;not null;index:idx_lost_requests_user"`
	IDType             string         `gorm:"column:id_type;size:40;not null"`
	FullName           string         `gorm:"column:full_name;size:120;not null"`
	RegistrationNumber string         `gorm:"column:registration_number;size:60;not null"`
	ContactPhone       string         `gorm:"column:contact_phone;size:30"`
	Status             Status         `gorm:"column:status;type:enum('submitted','matched','closed');default:'submitted';index:idx_lost_requests_status"`
	MatchedItemID      *uint64        `gorm:"column:matched_item_id"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (LostRequest) TableName() string { return "lost_requests" }
