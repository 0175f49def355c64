package lostrequest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	auditDomain "campusfind-backend/internal/domain/audit"
	itemDomain "campusfind-backend/internal/domain/item"
	requestDomain "campusfind-backend/internal/domain/lostrequest"
	notifDomain "campusfind-backend/internal/domain/notification"
	profileDomain "campusfind-backend/internal/domain/profile"
	"campusfind-backend/internal/domain/uow"
	"campusfind-backend/internal/usecase/notify"
	"campusfind-backend/pkg/id"
)

type Usecase struct {
	requests requestDomain.Repository
	items    itemDomain.Repository
	profiles profileDomain.Repository
	uow      uow.UnitOfWork
	emailer  *notify.Emailer
}

func NewUsecase(requests requestDomain.Repository, items itemDomain.Repository, profiles profileDomain.Repository, tx uow.UnitOfWork, emailer *notify.Emailer) *Usecase {
	return &Usecase{requests: requests, items: items, profiles: profiles, uow: tx, emailer: emailer}
}

type CreateInput struct {
	OwnerID            string // profile public id
	IDType             string
	FullName           string
	RegistrationNumber string
	ContactPhone       string
}

type UpdateInput struct {
	RequesterID        string
	RequesterIsAdmin   bool
	FullName           *string
	RegistrationNumber *string
	ContactPhone       *string
}

type SetStatusInput struct {
	ActorID       string
	RequestID     string
	Status        requestDomain.Status
	MatchedItemID string // public item id, required for matched
}

type RequestDTO struct {
	RequestID          string    `json:"request_id"`
	Owner              string    `json:"owner"`
	IDType             string    `json:"id_type"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number"`
	ContactPhone       string    `json:"contact_phone"`
	Status             string    `json:"status"`
	MatchedItemID      *string   `json:"matched_item_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toDTO(lr *requestDomain.LostRequest, owner *profileDomain.Profile, matchedItemID *string) RequestDTO {
	dto := RequestDTO{
		RequestID:          lr.RequestID,
		IDType:             lr.IDType,
		FullName:           lr.FullName,
		RegistrationNumber: lr.RegistrationNumber,
		ContactPhone:       lr.ContactPhone,
		Status:             string(lr.Status),
		MatchedItemID:      matchedItemID,
		CreatedAt:          lr.CreatedAt,
	}
	if owner != nil {
		dto.Owner = owner.ProfileID
	}
	return dto
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	if strings.TrimSpace(in.IDType) == "" || strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.RegistrationNumber) == "" {
		return nil, errors.New("invalid input")
	}

	owner, err := u.profiles.GetByProfileID(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	lr := &requestDomain.LostRequest{
		RequestID:          id.NewID32(),
		UserID:             owner.ID,
		IDType:             in.IDType,
		FullName:           in.FullName,
		RegistrationNumber: in.RegistrationNumber,
		ContactPhone:       in.ContactPhone,
		Status:             requestDomain.StatusSubmitted,
		StatusUpdatedAt:    time.Now().UTC(),
	}
	if err := u.requests.Create(ctx, lr); err != nil {
		return nil, err
	}

	dto := toDTO(lr, owner, nil)
	return &dto, nil
}

// Update lets the owner edit while submitted; admins may edit in any state.
func (u *Usecase) Update(ctx context.Context, requestID string, in UpdateInput) (*RequestDTO, error) {
	lr, err := u.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	owner, err := u.profiles.GetByID(ctx, lr.UserID)
	if err != nil {
		return nil, err
	}

	if !in.RequesterIsAdmin {
		if owner.ProfileID != in.RequesterID {
			return nil, requestDomain.ErrNotFound
		}
		if lr.Status != requestDomain.StatusSubmitted {
			return nil, requestDomain.ErrNotEditable
		}
	}

	if in.FullName != nil {
		lr.FullName = *in.FullName
	}
	if in.RegistrationNumber != nil {
		lr.RegistrationNumber = *in.RegistrationNumber
	}
	if in.ContactPhone != nil {
		lr.ContactPhone = *in.ContactPhone
	}
	if err := u.requests.Save(ctx, lr); err != nil {
		return nil, err
	}

	matched, err := u.matchedItemPublicID(ctx, lr)
	if err != nil {
		return nil, err
	}
	dto := toDTO(lr, owner, matched)
	return &dto, nil
}

// Delete removes a request. Blocked for everyone once matched.
func (u *Usecase) Delete(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool) error {
	lr, err := u.getRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if lr.Status == requestDomain.StatusMatched {
		return requestDomain.ErrNotDeletable
	}

	if !requesterIsAdmin {
		owner, err := u.profiles.GetByID(ctx, lr.UserID)
		if err != nil {
			return err
		}
		if owner.ProfileID != requesterID {
			return requestDomain.ErrNotFound
		}
		if lr.Status != requestDomain.StatusSubmitted {
			return requestDomain.ErrNotDeletable
		}
	}

	return u.requests.Delete(ctx, lr)
}

// SetStatus is the admin matching/closing flow; there is no automatic
// matching by registration number.
func (u *Usecase) SetStatus(ctx context.Context, in SetStatusInput) (*RequestDTO, error) {
	var (
		dto        *RequestDTO
		ownerEmail string
		title, msg string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		lr, err := r.Requests.GetByRequestID(ctx, in.RequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return requestDomain.ErrNotFound
			}
			return err
		}

		if !requestDomain.CanTransition(lr.Status, in.Status) {
			return requestDomain.ErrInvalidTransition
		}

		var matchedPublicID *string
		if in.Status == requestDomain.StatusMatched {
			if in.MatchedItemID == "" {
				return requestDomain.ErrMatchedItemRequired
			}
			it, err := r.Items.GetByItemID(ctx, in.MatchedItemID)
			if err != nil {
				return err
			}
			lr.MatchedItemID = &it.ID
			matchedPublicID = &it.ItemID
		}

		prev := lr.Status
		lr.Status = in.Status
		lr.StatusUpdatedAt = time.Now().UTC()
		if err := r.Requests.Save(ctx, lr); err != nil {
			return err
		}

		owner, err := r.Profiles.GetByID(ctx, lr.UserID)
		if err != nil {
			return err
		}

		title, msg = requestMessage(in.Status, lr)
		if err := r.Notifications.Create(ctx, &notifDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         owner.ID,
			Title:          title,
			Message:        msg,
			Type:           notifDomain.TypeRequestUpdate,
		}); err != nil {
			return err
		}

		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			ActorID:    in.ActorID,
			Action:     auditDomain.ActionRequestStatus,
			EntityType: "lost_request",
			EntityID:   lr.RequestID,
			Details:    auditDomain.Details(map[string]any{"from": prev, "to": in.Status}),
		}); err != nil {
			return err
		}

		ownerEmail = owner.Email
		d := toDTO(lr, owner, matchedPublicID)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.emailer.BestEffort(ownerEmail, title, msg)
	return dto, nil
}

func requestMessage(s requestDomain.Status, lr *requestDomain.LostRequest) (string, string) {
	switch s {
	case requestDomain.StatusMatched:
		return "Possible match found",
			fmt.Sprintf("A found %s may match your lost request. Please visit the portal to file a claim.", lr.IDType)
	case requestDomain.StatusClosed:
		return "Lost request closed",
			fmt.Sprintf("Your lost request for the %s has been closed.", lr.IDType)
	}
	return "Lost request updated", "Your lost request status changed."
}

func (u *Usecase) Get(ctx context.Context, requestID, requesterID string, requesterIsAdmin bool) (*RequestDTO, error) {
	lr, err := u.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	owner, err := u.profiles.GetByID(ctx, lr.UserID)
	if err != nil {
		return nil, err
	}
	if !requesterIsAdmin && owner.ProfileID != requesterID {
		return nil, requestDomain.ErrNotFound
	}
	matched, err := u.matchedItemPublicID(ctx, lr)
	if err != nil {
		return nil, err
	}
	dto := toDTO(lr, owner, matched)
	return &dto, nil
}

// List returns the caller's requests, or all of them when ownerID is empty.
func (u *Usecase) List(ctx context.Context, ownerID string, status requestDomain.Status, page, limit int) ([]RequestDTO, int64, error) {
	f := requestDomain.ListFilter{Status: status, Page: page, Limit: limit}
	if ownerID != "" {
		p, err := u.profiles.GetByProfileID(ctx, ownerID)
		if err != nil {
			return nil, 0, err
		}
		f.UserID = p.ID
	}

	rows, total, err := u.requests.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]RequestDTO, 0, len(rows))
	for i := range rows {
		matched, err := u.matchedItemPublicID(ctx, &rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, toDTO(&rows[i], nil, matched))
	}
	return out, total, nil
}

// matchedItemPublicID translates the matched-item FK into the public item id,
// so matched requests carry it on every read, not just the matching response.
func (u *Usecase) matchedItemPublicID(ctx context.Context, lr *requestDomain.LostRequest) (*string, error) {
	if lr.MatchedItemID == nil {
		return nil, nil
	}
	it, err := u.items.GetByID(ctx, *lr.MatchedItemID)
	if err != nil {
		return nil, err
	}
	return &it.ItemID, nil
}

func (u *Usecase) getRequest(ctx context.Context, requestID string) (*requestDomain.LostRequest, error) {
	lr, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestDomain.ErrNotFound
		}
		return nil, err
	}
	return lr, nil
}
