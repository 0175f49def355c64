package item

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("found item not found")
	ErrInvalidTransition = errors.New("invalid item status transition")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusClaimed  Status = "claimed"
	StatusReturned Status = "returned"
	StatusArchived Status = "archived"
)

// adminTransitions covers the direct admin status endpoint. Claim
// adjudication drives verified→claimed and claimed→returned separately.
var adminTransitions = map[Status][]Status{
	StatusPending:  {StatusVerified, StatusArchived},
	StatusVerified: {StatusArchived},
	StatusClaimed:  {StatusArchived},
	StatusReturned: {StatusArchived},
	StatusArchived: {},
}

// CanAdminTransition reports whether an admin may move an item from cur to
// next via the status endpoint.
func CanAdminTransition(cur, next Status) bool {
	for _, s := range adminTransitions[cur] {
		if s == next {
			return true
		}
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusVerified, StatusClaimed, StatusReturned, StatusArchived:
		return true
	}
	return false
}

// Table: found_items
type FoundItem struct {
	ID                 uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ItemID             string    `gorm:"column:item_id;type:char(32);not null;uniqueIndex:ux_found_items_item_id"`
	IDType             string    `gorm:"column:id_type;size:40;not null"`
	FullName           string    `gorm:"column:full_name;size:120;not null"`
	RegistrationNumber string    `gorm:"column:registration_number;size:60;not null;index:idx_found_items_regno"`
	ImageURL           string    `gorm:"column:image_url;type:text"`
	SightingLocation   string    `gorm:"column:sighting_location;size:200"`
	HoldingLocation    string    `gorm:"column:holding_location;size:200"`
	Description        string    `gorm:"column:description;type:text"`
	Visibility         bool      `gorm:"column:visibility;not null;default:true"`
	Status             Status    `gorm:"column:status;type:enum('pending','verified','claimed','returned','archived');default:'pending';index:idx_found_items_status"`
	ClaimedBy          *string   `gorm:"column:claimed_by;type:char(32)"`
	StatusUpdatedAt    time.Time `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedBy          string    `gorm:"column:created_by;type:char(32);not null"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (FoundItem) TableName() string { return "found_items" }
