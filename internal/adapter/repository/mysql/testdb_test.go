package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, no JSON column type) ---

type profileSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	ProfileID    string         `gorm:"size:32;column:profile_id"`
	FullName     string         `gorm:"column:full_name"`
	Email        string         `gorm:"column:email"`
	PasswordHash string         `gorm:"column:password_hash"`
	Role         string         `gorm:"type:text;column:role"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (profileSQLite) TableName() string { return "profiles" }

type itemSQLite struct {
	ID                 uint64    `gorm:"primaryKey;column:id"`
	ItemID             string    `gorm:"size:32;column:item_id"`
	IDType             string    `gorm:"column:id_type"`
	FullName           string    `gorm:"column:full_name"`
	RegistrationNumber string    `gorm:"column:registration_number"`
	ImageURL           string    `gorm:"column:image_url"`
	SightingLocation   string    `gorm:"column:sighting_location"`
	HoldingLocation    string    `gorm:"column:holding_location"`
	Description        string    `gorm:"column:description"`
	Visibility         bool      `gorm:"column:visibility"`
	Status             string    `gorm:"type:text;column:status"`
	ClaimedBy          *string   `gorm:"column:claimed_by"`
	StatusUpdatedAt    time.Time `gorm:"column:status_updated_at"`
	CreatedBy          string    `gorm:"column:created_by"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (itemSQLite) TableName() string { return "found_items" }

type claimSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	ClaimID          string         `gorm:"size:32;column:claim_id"`
	ItemID           uint64         `gorm:"column:item_id"`
	ClaimantID       uint64         `gorm:"column:claimant_id"`
	ProofDescription string         `gorm:"column:proof_description"`
	AdminNotes       string         `gorm:"column:admin_notes"`
	Status           string         `gorm:"type:text;column:status"`
	StatusUpdatedAt  time.Time      `gorm:"column:status_updated_at"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (claimSQLite) TableName() string { return "claims" }

type requestSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	RequestID          string         `gorm:"size:32;column:request_id"`
	UserID             uint64         `gorm:"column:user_id"`
	IDType             string         `gorm:"column:id_type"`
	FullName           string         `gorm:"column:full_name"`
	RegistrationNumber string         `gorm:"column:registration_number"`
	ContactPhone       string         `gorm:"column:contact_phone"`
	Status             string         `gorm:"type:text;column:status"`
	MatchedItemID      *uint64        `gorm:"column:matched_item_id"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (requestSQLite) TableName() string { return "lost_requests" }

type submissionSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	SubmissionID       string         `gorm:"size:32;column:submission_id"`
	IDType             string         `gorm:"column:id_type"`
	FullName           string         `gorm:"column:full_name"`
	RegistrationNumber string         `gorm:"column:registration_number"`
	ImageURL           string         `gorm:"column:image_url"`
	SightingLocation   string         `gorm:"column:sighting_location"`
	FinderName         string         `gorm:"column:finder_name"`
	FinderContact      string         `gorm:"column:finder_contact"`
	Approved           *bool          `gorm:"column:approved"`
	ReviewedBy         *string        `gorm:"column:reviewed_by"`
	ReviewedAt         *time.Time     `gorm:"column:reviewed_at"`
	ReviewNotes        string         `gorm:"column:review_notes"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (submissionSQLite) TableName() string { return "submissions" }

type notificationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	NotificationID string    `gorm:"size:32;column:notification_id"`
	UserID         uint64    `gorm:"column:user_id"`
	Title          string    `gorm:"column:title"`
	Message        string    `gorm:"column:message"`
	Type           string    `gorm:"type:text;column:type"`
	IsRead         bool      `gorm:"column:is_read"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

type auditSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	ActorID    string    `gorm:"size:32;column:actor_id"`
	Action     string    `gorm:"column:action"`
	EntityType string    `gorm:"column:entity_type"`
	EntityID   string    `gorm:"size:32;column:entity_id"`
	Details    string    `gorm:"type:text;column:details"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (auditSQLite) TableName() string { return "audit_log" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&profileSQLite{},
		&itemSQLite{},
		&claimSQLite{},
		&requestSQLite{},
		&submissionSQLite{},
		&notificationSQLite{},
		&auditSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
