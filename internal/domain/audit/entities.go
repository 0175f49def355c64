package audit

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Action names recorded by privileged mutations.
const (
	ActionItemCreate       = "item.create"
	ActionItemUpdate       = "item.update"
	ActionItemStatus       = "item.status"
	ActionClaimAdjudicate  = "claim.adjudicate"
	ActionRequestStatus    = "request.status"
	ActionSubmissionReview = "submission.review"
	ActionBroadcast        = "notification.broadcast"
)

// Entry is append-only; there is no update or delete path.
type Entry struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	ActorID    string         `gorm:"column:actor_id;type:char(32);not null;index:idx_audit_actor"`
	Action     string         `gorm:"column:action;size:60;not null;index:idx_audit_action"`
	EntityType string         `gorm:"column:entity_type;size:40;not null;index:idx_audit_entity"`
	EntityID   string         `gorm:"column:entity_id;type:char(32);not null"`
	Details    datatypes.JSON `gorm:"column:details;type:json"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Entry) TableName() string { return "audit_log" }

// Details marshals a key/value set for the JSON column.
func Details(kv map[string]any) datatypes.JSON {
	b, _ := json.Marshal(kv)
	return datatypes.JSON(b)
}
