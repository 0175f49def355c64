package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campusfind-backend/internal/auth"
	profileDomain "campusfind-backend/internal/domain/profile"
	"campusfind-backend/pkg/id"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Usecase struct {
	profiles profileDomain.Repository
	secret   string
}

func NewUsecase(profiles profileDomain.Repository, jwtSecret string) *Usecase {
	return &Usecase{profiles: profiles, secret: jwtSecret}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type ProfileDTO struct {
	ProfileID string    `json:"profile_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthDTO struct {
	Token   string     `json:"token"`
	Profile ProfileDTO `json:"profile"`
}

func toProfileDTO(p *profileDomain.Profile) ProfileDTO {
	return ProfileDTO{
		ProfileID: p.ProfileID,
		FullName:  p.FullName,
		Email:     p.Email,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthDTO, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := u.profiles.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, profileDomain.ErrDuplicateEmail
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &profileDomain.Profile{
		ProfileID:    id.NewID32(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         profileDomain.RoleStudent,
	}
	if err := u.profiles.Create(ctx, p); err != nil {
		return nil, err
	}

	return u.authDTO(p)
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*AuthDTO, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	p, err := u.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return u.authDTO(p)
}

func (u *Usecase) Me(ctx context.Context, profileID string) (*ProfileDTO, error) {
	p, err := u.profiles.GetByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileDomain.ErrNotFound
		}
		return nil, err
	}
	dto := toProfileDTO(p)
	return &dto, nil
}

func (u *Usecase) authDTO(p *profileDomain.Profile) (*AuthDTO, error) {
	tok, err := auth.GenerateToken(u.secret, p.ProfileID, string(p.Role))
	if err != nil {
		return nil, err
	}
	return &AuthDTO{Token: tok, Profile: toProfileDTO(p)}, nil
}
