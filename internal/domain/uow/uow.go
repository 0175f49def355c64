package uow

import (
	"context"

	"campusfind-backend/internal/domain/audit"
	"campusfind-backend/internal/domain/claim"
	"campusfind-backend/internal/domain/item"
	"campusfind-backend/internal/domain/lostrequest"
	"campusfind-backend/internal/domain/notification"
	"campusfind-backend/internal/domain/profile"
	"campusfind-backend/internal/domain/submission"
)

type Repos struct {
	Profiles      profile.Repository
	Items         item.Repository
	Claims        claim.Repository
	Requests      lostrequest.Repository
	Submissions   submission.Repository
	Notifications notification.Repository
	Audit         audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the found item first, then pass it in
	WithinItemTx(ctx context.Context, itemID string, fn func(r Repos, it *item.FoundItem) error) error
}
