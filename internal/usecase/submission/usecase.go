package submission

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	auditDomain "campusfind-backend/internal/domain/audit"
	itemDomain "campusfind-backend/internal/domain/item"
	submissionDomain "campusfind-backend/internal/domain/submission"
	"campusfind-backend/internal/domain/uow"
	"campusfind-backend/pkg/id"
)

type Usecase struct {
	repo submissionDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo submissionDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

type CreateInput struct {
	IDType             string
	FullName           string
	RegistrationNumber string
	ImageURL           string
	SightingLocation   string
	FinderName         string
	FinderContact      string
}

type ReviewInput struct {
	ActorID      string
	SubmissionID string
	Approve      bool
	Notes        string
}

type SubmissionDTO struct {
	SubmissionID       string     `json:"submission_id"`
	IDType             string     `json:"id_type"`
	FullName           string     `json:"full_name"`
	RegistrationNumber string     `json:"registration_number"`
	ImageURL           string     `json:"image_url"`
	SightingLocation   string     `json:"sighting_location"`
	FinderName         string     `json:"finder_name"`
	FinderContact      string     `json:"finder_contact"`
	Approved           *bool      `json:"approved"`
	ReviewedBy         *string    `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	ReviewNotes        string     `json:"review_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	// ItemID is set when an approval produced a found item.
	ItemID string `json:"item_id,omitempty"`
}

func toDTO(s *submissionDomain.Submission) SubmissionDTO {
	return SubmissionDTO{
		SubmissionID:       s.SubmissionID,
		IDType:             s.IDType,
		FullName:           s.FullName,
		RegistrationNumber: s.RegistrationNumber,
		ImageURL:           s.ImageURL,
		SightingLocation:   s.SightingLocation,
		FinderName:         s.FinderName,
		FinderContact:      s.FinderContact,
		Approved:           s.Approved,
		ReviewedBy:         s.ReviewedBy,
		ReviewedAt:         s.ReviewedAt,
		ReviewNotes:        s.ReviewNotes,
		CreatedAt:          s.CreatedAt,
	}
}

// Create is the public finder intake; no authentication involved.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*SubmissionDTO, error) {
	if strings.TrimSpace(in.IDType) == "" || strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.RegistrationNumber) == "" {
		return nil, errors.New("invalid input")
	}

	s := &submissionDomain.Submission{
		SubmissionID:       id.NewID32(),
		IDType:             in.IDType,
		FullName:           in.FullName,
		RegistrationNumber: in.RegistrationNumber,
		ImageURL:           in.ImageURL,
		SightingLocation:   in.SightingLocation,
		FinderName:         in.FinderName,
		FinderContact:      in.FinderContact,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	dto := toDTO(s)
	return &dto, nil
}

// Review is terminal. Approval copies the submission into the found-item
// registry as verified, inside the same transaction.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*SubmissionDTO, error) {
	var dto *SubmissionDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		s, err := r.Submissions.GetBySubmissionIDForUpdate(ctx, in.SubmissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return submissionDomain.ErrNotFound
			}
			return err
		}
		if s.Reviewed() {
			return submissionDomain.ErrAlreadyReviewed
		}

		now := time.Now().UTC()
		approved := in.Approve
		s.Approved = &approved
		s.ReviewedBy = &in.ActorID
		s.ReviewedAt = &now
		s.ReviewNotes = in.Notes
		if err := r.Submissions.Save(ctx, s); err != nil {
			return err
		}

		d := toDTO(s)

		if in.Approve {
			it := &itemDomain.FoundItem{
				ItemID:             id.NewID32(),
				IDType:             s.IDType,
				FullName:           s.FullName,
				RegistrationNumber: s.RegistrationNumber,
				ImageURL:           s.ImageURL,
				SightingLocation:   s.SightingLocation,
				Description:        "Logged from a public submission.",
				Visibility:         true,
				Status:             itemDomain.StatusVerified,
				StatusUpdatedAt:    now,
				CreatedBy:          in.ActorID,
			}
			if err := r.Items.Create(ctx, it); err != nil {
				return err
			}
			d.ItemID = it.ItemID
		}

		if err := r.Audit.Append(ctx, &auditDomain.Entry{
			ActorID:    in.ActorID,
			Action:     auditDomain.ActionSubmissionReview,
			EntityType: "submission",
			EntityID:   s.SubmissionID,
			Details:    auditDomain.Details(map[string]any{"approved": in.Approve, "item": d.ItemID}),
		}); err != nil {
			return err
		}

		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, submissionID string) (*SubmissionDTO, error) {
	s, err := u.repo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, submissionDomain.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(s)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, reviewed *bool, page, limit int) ([]SubmissionDTO, int64, error) {
	rows, total, err := u.repo.List(ctx, submissionDomain.ListFilter{Reviewed: reviewed, Page: page, Limit: limit})
	if err != nil {
		return nil, 0, err
	}
	out := make([]SubmissionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, total, nil
}
