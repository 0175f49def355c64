package profile

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("profile not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Profiles back the auth layer; the row is the source of truth for the
// caller's role, not the token.
type Profile struct {
	ID           uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	ProfileID    string         `gorm:"column:profile_id;type:char(32);not null;uniqueIndex:ux_profiles_profile_id"`
	FullName     string         `gorm:"column:full_name;size:120;not null"`
	Email        string         `gorm:"column:email;size:190;not null;uniqueIndex:ux_profiles_email"`
	PasswordHash string         `gorm:"column:password_hash;size:100;not null"`
	Role         Role           `gorm:"column:role;type:enum('student','admin');default:'student'"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) IsAdmin() bool { return p.Role == RoleAdmin }
