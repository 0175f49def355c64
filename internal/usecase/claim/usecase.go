package claim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	auditDomain "campusfind-backend/internal/domain/audit"
	claimDomain "campusfind-backend/internal/domain/claim"
	itemDomain "campusfind-backend/internal/domain/item"
	notifDomain "campusfind-backend/internal/domain/notification"
	profileDomain "campusfind-backend/internal/domain/profile"
	"campusfind-backend/internal/domain/uow"
	"campusfind-backend/internal/usecase/notify"
	"campusfind-backend/pkg/id"
)

var ErrProofTooShort = errors.New("proof description must be at least 10 characters")

const minProofLen = 10

type Usecase struct {
	claims   claimDomain.Repository
	items    itemDomain.Repository
	profiles profileDomain.Repository
	uow      uow.UnitOfWork
	emailer  *notify.Emailer
}

func NewUsecase(claims claimDomain.Repository, items itemDomain.Repository, profiles profileDomain.Repository, tx uow.UnitOfWork, emailer *notify.Emailer) *Usecase {
	return &Usecase{claims: claims, items: items, profiles: profiles, uow: tx, emailer: emailer}
}

type SubmitInput struct {
	ItemID           string
	ClaimantID       string // profile public id
	ProofDescription string
}

type AdjudicateInput struct {
	ActorID    string
	ClaimID    string
	Status     claimDomain.Status
	AdminNotes string
}

type ClaimDTO struct {
	ClaimID          string    `json:"claim_id"`
	ItemID           string    `json:"item_id"`
	Claimant         string    `json:"claimant"`
	ClaimantName     string    `json:"claimant_name,omitempty"`
	ProofDescription string    `json:"proof_description"`
	AdminNotes       string    `json:"admin_notes,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Submit creates a pending claim. The item row is locked for the duration of
// the checks so a concurrent duplicate cannot slip between the existence
// check and the insert.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ClaimDTO, error) {
	if len(strings.TrimSpace(in.ProofDescription)) < minProofLen {
		return nil, ErrProofTooShort
	}

	var dto *ClaimDTO
	err := u.uow.WithinItemTx(ctx, in.ItemID, func(r uow.Repos, it *itemDomain.FoundItem) error {
		if it.Status != itemDomain.StatusVerified || !it.Visibility {
			return claimDomain.ErrItemNotClaimable
		}

		claimant, err := r.Profiles.GetByProfileID(ctx, in.ClaimantID)
		if err != nil {
			return err
		}

		_, err = r.Claims.GetActiveByItemAndClaimant(ctx, it.ID, claimant.ID)
		switch {
		case err == nil:
			return claimDomain.ErrDuplicateClaim
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		c := &claimDomain.Claim{
			ClaimID:          id.NewID32(),
			ItemID:           it.ID,
			ClaimantID:       claimant.ID,
			ProofDescription: in.ProofDescription,
			Status:           claimDomain.StatusPending,
			StatusUpdatedAt:  time.Now().UTC(),
		}
		if err := r.Claims.Create(ctx, c); err != nil {
			return err
		}

		dto = &ClaimDTO{
			ClaimID:          c.ClaimID,
			ItemID:           it.ItemID,
			Claimant:         claimant.ProfileID,
			ProofDescription: c.ProofDescription,
			Status:           string(c.Status),
			CreatedAt:        c.CreatedAt,
		}
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

// Adjudicate applies an admin decision atomically: the claim row and the item
// row move together or not at all. Lock order is claim first, then item, the
// same for every adjudication, so concurrent admins serialize cleanly.
func (u *Usecase) Adjudicate(ctx context.Context, in AdjudicateInput) (*ClaimDTO, error) {
	if !claimDomain.ValidStatus(in.Status) {
		return nil, claimDomain.ErrInvalidTransition
	}

	var (
		dto           *ClaimDTO
		claimantEmail string
		mailSubject   string
		mailBody      string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Claims.GetByClaimIDForUpdate(ctx, in.ClaimID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return claimDomain.ErrNotFound
			}
			return err
		}

		if !claimDomain.CanTransition(c.Status, in.Status) {
			return claimDomain.ErrInvalidTransition
		}

		it, err := r.Items.GetByIDForUpdate(ctx, c.ItemID)
		if err != nil {
			return err
		}
		claimant, err := r.Profiles.GetByID(ctx, c.ClaimantID)
		if err != nil {
			return err
		}

		switch in.Status {
		case claimDomain.StatusApproved:
			if it.Status != itemDomain.StatusVerified {
				return claimDomain.ErrItemNotClaimable
			}
			it.Status = itemDomain.StatusClaimed
			it.ClaimedBy = &claimant.ProfileID
			it.StatusUpdatedAt = time.Now().UTC()
			if err := r.Items.Save(ctx, it); err != nil {
				return err
			}
		case claimDomain.StatusCompleted:
			if it.Status != itemDomain.StatusClaimed || it.ClaimedBy == nil || *it.ClaimedBy != claimant.ProfileID {
				return claimDomain.ErrInvalidTransition
			}
			it.Status = itemDomain.StatusReturned
			it.StatusUpdatedAt = time.Now().UTC()
			if err := r.Items.Save(ctx, it); err != nil {
				return err
			}
		case claimDomain.StatusRejected:
			// claim row only
		}

		prev := c.Status
		c.Status = in.Status
		c.StatusUpdatedAt = time.Now().UTC()
		if in.AdminNotes != "" {
			c.AdminNotes = in.AdminNotes
		}
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}

		title, msg := claimMessage(in.Status, it)
		if err := r.Notifications.Create(ctx, &notifDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         claimant.ID,
			Title:          title,
			Message:        msg,
			Type:           notifDomain.TypeClaimUpdate,
		}); err != nil {
			return err
		}

		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			ActorID:    in.ActorID,
			Action:     auditDomain.ActionClaimAdjudicate,
			EntityType: "claim",
			EntityID:   c.ClaimID,
			Details:    auditDomain.Details(map[string]any{"from": prev, "to": in.Status, "item": it.ItemID}),
		}); err != nil {
			return err
		}

		claimantEmail = claimant.Email
		mailSubject, mailBody = title, msg
		dto = &ClaimDTO{
			ClaimID:          c.ClaimID,
			ItemID:           it.ItemID,
			Claimant:         claimant.ProfileID,
			ClaimantName:     claimant.FullName,
			ProofDescription: c.ProofDescription,
			AdminNotes:       c.AdminNotes,
			Status:           string(c.Status),
			CreatedAt:        c.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// post-commit, best-effort
	u.emailer.BestEffort(claimantEmail, mailSubject, mailBody)
	return dto, nil
}

func claimMessage(s claimDomain.Status, it *itemDomain.FoundItem) (title, msg string) {
	switch s {
	case claimDomain.StatusApproved:
		return "Claim approved",
			fmt.Sprintf("Your claim for the %s of %s was approved. Please collect it at %s.", it.IDType, it.FullName, it.HoldingLocation)
	case claimDomain.StatusRejected:
		return "Claim rejected",
			fmt.Sprintf("Your claim for the %s of %s was rejected.", it.IDType, it.FullName)
	case claimDomain.StatusCompleted:
		return "Item returned",
			fmt.Sprintf("The %s of %s has been marked as returned. Thank you.", it.IDType, it.FullName)
	}
	return "Claim updated", "Your claim status changed."
}

// Get returns a single claim; owner and admin only (enforced by the caller
// passing requesterID="" for admins).
func (u *Usecase) Get(ctx context.Context, claimID, requesterID string) (*ClaimDTO, error) {
	c, err := u.claims.GetByClaimID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claimDomain.ErrNotFound
		}
		return nil, err
	}

	claimant, err := u.profiles.GetByID(ctx, c.ClaimantID)
	if err != nil {
		return nil, err
	}
	if requesterID != "" && claimant.ProfileID != requesterID {
		return nil, claimDomain.ErrNotFound
	}
	it, err := u.items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, err
	}

	return &ClaimDTO{
		ClaimID:          c.ClaimID,
		ItemID:           it.ItemID,
		Claimant:         claimant.ProfileID,
		ClaimantName:     claimant.FullName,
		ProofDescription: c.ProofDescription,
		AdminNotes:       c.AdminNotes,
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
	}, nil
}

// List returns the caller's claims, or every claim when claimantID is empty
// (admin listing).
func (u *Usecase) List(ctx context.Context, claimantID string, status claimDomain.Status, page, limit int) ([]ClaimDTO, int64, error) {
	f := claimDomain.ListFilter{Status: status, Page: page, Limit: limit}
	if claimantID != "" {
		p, err := u.profiles.GetByProfileID(ctx, claimantID)
		if err != nil {
			return nil, 0, err
		}
		f.ClaimantID = p.ID
	}

	rows, total, err := u.claims.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]ClaimDTO, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, ClaimDTO{
			ClaimID:          r.ClaimID,
			ItemID:           r.ItemPublicID,
			Claimant:         r.ClaimantProfileID,
			ClaimantName:     r.ClaimantName,
			ProofDescription: r.ProofDescription,
			AdminNotes:       r.AdminNotes,
			Status:           string(r.Status),
			CreatedAt:        r.CreatedAt,
		})
	}
	return out, total, nil
}
