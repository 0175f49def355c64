package mysql

import (
	"context"

	profileDomain "campusfind-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) Create(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) Save(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uint64) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ProfileRepository) GetByProfileID(ctx context.Context, profileID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) ListActive(ctx context.Context) ([]profileDomain.Profile, error) {
	var out []profileDomain.Profile
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
