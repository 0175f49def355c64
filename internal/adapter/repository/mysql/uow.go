package mysql

import (
	"context"

	"campusfind-backend/internal/domain/item"
	"campusfind-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Profiles:      &ProfileRepository{db: tx},
		Items:         &ItemRepository{db: tx},
		Claims:        &ClaimRepository{db: tx},
		Requests:      &LostRequestRepository{db: tx},
		Submissions:   &SubmissionRepository{db: tx},
		Notifications: &NotificationRepository{db: tx},
		Audit:         &AuditRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinItemTx(ctx context.Context, itemID string, fn func(r uow.Repos, it *item.FoundItem) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the item row up-front to prevent races
		it, err := r.Items.GetByItemIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		return fn(r, it)
	})
}
