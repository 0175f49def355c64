package submission

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("submission not found")
	ErrAlreadyReviewed = errors.New("submission already reviewed")
)

// Submissions come from unauthenticated finders; review is terminal.
// Approved is nil until an admin reviews the row.
type Submission struct {
	ID                 uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	SubmissionID       string         `gorm:"column:submission_id;type:char(32);not null;uniqueIndex:ux_submissions_submission_id"`
	IDType             string         `gorm:"column:id_type;size:40;not null"`
	FullName           string         `gorm:"column:full_name;size:120;not null"`
	RegistrationNumber string         `gorm:"column:registration_number;size:60;not null"`
	ImageURL           string         `gorm:"column:image_url;type:text"`
	SightingLocation   string         `gorm:"column:sighting_location;size:200"`
	FinderName         string         `gorm:"column:finder_name;size:120"`
	FinderContact      string         `gorm:"column:finder_contact;size:120"`
	Approved           *bool          `gorm:"column:approved"`
	ReviewedBy         *string        `gorm:"column:reviewed_by;type:char(32)"`
	ReviewedAt         *time.Time     `gorm:"column:reviewed_at"`
	ReviewNotes        string         `gorm:"column:review_notes;type:text"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Submission) TableName() string { return "submissions" }

func (s *Submission) Reviewed() bool { return s.ReviewedBy != nil }
