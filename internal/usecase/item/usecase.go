package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	auditDomain "campusfind-backend/internal/domain/audit"
	itemDomain "campusfind-backend/internal/domain/item"
	"campusfind-backend/internal/domain/uow"
	"campusfind-backend/pkg/id"
)

type Usecase struct {
	repo itemDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo itemDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

type CreateInput struct {
	ActorID            string
	IDType             string
	FullName           string
	RegistrationNumber string
	ImageURL           string
	SightingLocation   string
	HoldingLocation    string
	Description        string
}

type UpdateInput struct {
	ActorID         string
	HoldingLocation *string
	Description     *string
	Visibility      *bool
}

type ItemDTO struct {
	ItemID             string    `json:"item_id"`
	IDType             string    `json:"id_type"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number"`
	ImageURL           string    `json:"image_url"`
	SightingLocation   string    `json:"sighting_location"`
	HoldingLocation    string    `json:"holding_location"`
	Description        string    `json:"description"`
	Visibility         bool      `json:"visibility"`
	Status             string    `json:"status"`
	ClaimedBy          *string   `json:"claimed_by,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// MaskRegistration hides everything but the last 4 characters. Strings of 4
// characters or fewer come back unchanged, matching the public behavior the
// portal has always had.
func MaskRegistration(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return s
	}
	masked := make([]rune, len(r))
	for i := range r {
		if i < len(r)-4 {
			masked[i] = '*'
		} else {
			masked[i] = r[i]
		}
	}
	return string(masked)
}

func toDTO(it *itemDomain.FoundItem, admin bool) ItemDTO {
	dto := ItemDTO{
		ItemID:             it.ItemID,
		IDType:             it.IDType,
		FullName:           it.FullName,
		RegistrationNumber: it.RegistrationNumber,
		ImageURL:           it.ImageURL,
		SightingLocation:   it.SightingLocation,
		HoldingLocation:    it.HoldingLocation,
		Description:        it.Description,
		Visibility:         it.Visibility,
		Status:             string(it.Status),
		CreatedAt:          it.CreatedAt,
	}
	if admin {
		dto.ClaimedBy = it.ClaimedBy
	} else {
		dto.RegistrationNumber = MaskRegistration(it.RegistrationNumber)
	}
	return dto
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ItemDTO, error) {
	if strings.TrimSpace(in.IDType) == "" || strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.RegistrationNumber) == "" {
		return nil, errors.New("invalid input")
	}

	it := &itemDomain.FoundItem{
		ItemID:             id.NewID32(),
		IDType:             in.IDType,
		FullName:           in.FullName,
		RegistrationNumber: in.RegistrationNumber,
		ImageURL:           in.ImageURL,
		SightingLocation:   in.SightingLocation,
		HoldingLocation:    in.HoldingLocation,
		Description:        in.Description,
		Visibility:         true,
		Status:             itemDomain.StatusPending,
		StatusUpdatedAt:    time.Now().UTC(),
		CreatedBy:          in.ActorID,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Items.Create(ctx, it); err != nil {
			return err
		}
		return r.Audit.Append(ctx, &auditDomain.Entry{
			ActorID:    in.ActorID,
			Action:     auditDomain.ActionItemCreate,
			EntityType: "found_item",
			EntityID:   it.ItemID,
			Details:    auditDomain.Details(map[string]any{"id_type": it.IDType, "status": it.Status}),
		})
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(it, true)
	return &dto, nil
}

// Get returns an item respecting the caller's visibility: non-admins only see
// verified, visible items and get a masked registration number.
func (u *Usecase) Get(ctx context.Context, itemID string, admin bool) (*ItemDTO, error) {
	it, err := u.repo.GetByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itemDomain.ErrNotFound
		}
		return nil, err
	}
	if !admin && (it.Status != itemDomain.StatusVerified || !it.Visibility) {
		return nil, itemDomain.ErrNotFound
	}
	dto := toDTO(it, admin)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, f itemDomain.ListFilter, admin bool) ([]ItemDTO, int64, error) {
	if !admin {
		f.PublicOnly = true
		f.Status = ""
	}
	items, total, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, toDTO(&items[i], admin))
	}
	return out, total, nil
}

// SetStatus applies an admin-driven transition. Claim adjudication owns the
// verified→claimed and claimed→returned moves; they are rejected here.
func (u *Usecase) SetStatus(ctx context.Context, actorID, itemID string, next itemDomain.Status) (*ItemDTO, error) {
	if !itemDomain.ValidStatus(next) {
		return nil, itemDomain.ErrInvalidTransition
	}

	var dto *ItemDTO
	err := u.uow.WithinItemTx(ctx, itemID, func(r uow.Repos, it *itemDomain.FoundItem) error {
		if !itemDomain.CanAdminTransition(it.Status, next) {
			return itemDomain.ErrInvalidTransition
		}
		prev := it.Status
		it.Status = next
		it.StatusUpdatedAt = time.Now().UTC()
		if next == itemDomain.StatusArchived {
			// archived is the soft-delete; it must never stay publicly listed
			it.Visibility = false
		}
		if err := r.Items.Save(ctx, it); err != nil {
			return err
		}
		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			ActorID:    actorID,
			Action:     auditDomain.ActionItemStatus,
			EntityType: "found_item",
			EntityID:   it.ItemID,
			Details:    auditDomain.Details(map[string]any{"from": prev, "to": next}),
		}); err != nil {
			return err
		}
		d := toDTO(it, true)
		dto = &d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itemDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Update edits mutable fields without a state change.
func (u *Usecase) Update(ctx context.Context, itemID string, in UpdateInput) (*ItemDTO, error) {
	var dto *ItemDTO
	err := u.uow.WithinItemTx(ctx, itemID, func(r uow.Repos, it *itemDomain.FoundItem) error {
		changed := map[string]any{}
		if in.HoldingLocation != nil {
			it.HoldingLocation = *in.HoldingLocation
			changed["holding_location"] = *in.HoldingLocation
		}
		if in.Description != nil {
			it.Description = *in.Description
			changed["description"] = true
		}
		if in.Visibility != nil {
			it.Visibility = *in.Visibility
			changed["visibility"] = *in.Visibility
		}
		if len(changed) == 0 {
			d := toDTO(it, true)
			dto = &d
			return nil
		}
		if err := r.Items.Save(ctx, it); err != nil {
			return err
		}
		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			ActorID:    in.ActorID,
			Action:     auditDomain.ActionItemUpdate,
			EntityType: "found_item",
			EntityID:   it.ItemID,
			Details:    auditDomain.Details(changed),
		}); err != nil {
			return err
		}
		d := toDTO(it, true)
		dto = &d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itemDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
