package auditlog

import (
	"context"
	"encoding/json"
	"time"

	auditDomain "campusfind-backend/internal/domain/audit"
)

type Usecase struct{ repo auditDomain.Repository }

func NewUsecase(repo auditDomain.Repository) *Usecase { return &Usecase{repo: repo} }

type EntryDTO struct {
	Actor      string          `json:"actor"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (u *Usecase) List(ctx context.Context, action, entityType string, page, limit int) ([]EntryDTO, int64, error) {
	rows, total, err := u.repo.List(ctx, auditDomain.ListFilter{
		Action:     action,
		EntityType: entityType,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]EntryDTO, 0, len(rows))
	for i := range rows {
		e := &rows[i]
		out = append(out, EntryDTO{
			Actor:      e.ActorID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Details:    json.RawMessage(e.Details),
			CreatedAt:  e.CreatedAt,
		})
	}
	return out, total, nil
}
