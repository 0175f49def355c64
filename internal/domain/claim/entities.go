package claim

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("claim not found")
	ErrItemNotClaimable  = errors.New("item is not open for claims")
	ErrDuplicateClaim    = errors.New("an active claim for this item already exists")
	ErrInvalidTransition = errors.New("invalid claim status transition")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusCompleted},
	StatusRejected:  {},
	StatusCompleted: {},
}

// CanTransition reports whether adjudication may move a claim from cur to next.
func CanTransition(cur, next Status) bool {
	for _, s := range transitions[cur] {
		if s == next {
			return true
		}
	}
	return false
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Table: claims
type Claim struct {
	ID               uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	ClaimID          string         `gorm:"column:claim_id;type:char(32);not null;uniqueIndex:ux_claims_claim_id"`
	ItemID           uint64         `gorm:"column:item_id;not null;index:idx_claims_item"`
	ClaimantID       uint64         `gorm:"column:claimant_id;not null;index:idx_claims_claimant"`
	ProofDescription string         `gorm:"column:proof_description;type:text;not null"`
	AdminNotes       string         `gorm:"column:admin_notes;type:text"`
	Status           Status         `gorm:"column:status;type:enum('pending','approved','rejected','completed');default:'pending';index:idx_claims_status"`
	StatusUpdatedAt  time.Time      `gorm:"column:status_updated_at;autoCreateTime"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Claim) TableName() string { return "claims" }
