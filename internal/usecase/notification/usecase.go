package notification

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	auditDomain "campusfind-backend/internal/domain/audit"
	notifDomain "campusfind-backend/internal/domain/notification"
	profileDomain "campusfind-backend/internal/domain/profile"
	"campusfind-backend/internal/domain/uow"
	"campusfind-backend/internal/usecase/notify"
	"campusfind-backend/pkg/id"
)

type Usecase struct {
	repo     notifDomain.Repository
	profiles profileDomain.Repository
	uow      uow.UnitOfWork
	emailer  *notify.Emailer
}

func NewUsecase(repo notifDomain.Repository, profiles profileDomain.Repository, tx uow.UnitOfWork, emailer *notify.Emailer) *Usecase {
	return &Usecase{repo: repo, profiles: profiles, uow: tx, emailer: emailer}
}

type NotificationDTO struct {
	NotificationID string    `json:"notification_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func toDTO(n *notifDomain.Notification) NotificationDTO {
	return NotificationDTO{
		NotificationID: n.NotificationID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           string(n.Type),
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

func (u *Usecase) List(ctx context.Context, userProfileID string, unreadOnly bool, page, limit int) ([]NotificationDTO, int64, error) {
	p, err := u.profiles.GetByProfileID(ctx, userProfileID)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := u.repo.List(ctx, notifDomain.ListFilter{
		UserID:     p.ID,
		UnreadOnly: unreadOnly,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]NotificationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, total, nil
}

// MarkRead flips is_read for a notification owned by the caller.
func (u *Usecase) MarkRead(ctx context.Context, userProfileID, notificationID string) (*NotificationDTO, error) {
	p, err := u.profiles.GetByProfileID(ctx, userProfileID)
	if err != nil {
		return nil, err
	}

	n, err := u.repo.GetByNotificationID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notifDomain.ErrNotFound
		}
		return nil, err
	}
	if n.UserID != p.ID {
		return nil, notifDomain.ErrNotFound
	}

	if !n.IsRead {
		n.IsRead = true
		if err := u.repo.Save(ctx, n); err != nil {
			return nil, err
		}
	}
	dto := toDTO(n)
	return &dto, nil
}

func (u *Usecase) MarkAllRead(ctx context.Context, userProfileID string) error {
	p, err := u.profiles.GetByProfileID(ctx, userProfileID)
	if err != nil {
		return err
	}
	return u.repo.MarkAllRead(ctx, p.ID)
}

type BroadcastInput struct {
	ActorID string
	Title   string
	Message string
}

// Broadcast writes one row per active profile in a single transaction, then
// fans out email best-effort.
func (u *Usecase) Broadcast(ctx context.Context, in BroadcastInput) (int, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Message) == "" {
		return 0, errors.New("title and message are required")
	}

	var emails []string
	var count int

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		profiles, err := r.Profiles.ListActive(ctx)
		if err != nil {
			return err
		}

		rows := make([]notifDomain.Notification, 0, len(profiles))
		for i := range profiles {
			rows = append(rows, notifDomain.Notification{
				NotificationID: id.NewID32(),
				UserID:         profiles[i].ID,
				Title:          in.Title,
				Message:        in.Message,
				Type:           notifDomain.TypeBroadcast,
			})
			emails = append(emails, profiles[i].Email)
		}
		if err := r.Notifications.CreateBatch(ctx, rows); err != nil {
			return err
		}
		count = len(rows)

		return r.Audit.Append(ctx, &auditDomain.Entry{
			ActorID:    in.ActorID,
			Action:     auditDomain.ActionBroadcast,
			EntityType: "notification",
			EntityID:   "broadcast",
			Details:    auditDomain.Details(map[string]any{"title": in.Title, "recipients": count}),
		})
	})
	if err != nil {
		return 0, err
	}

	for _, to := range emails {
		u.emailer.BestEffort(to, in.Title, in.Message)
	}
	return count, nil
}
