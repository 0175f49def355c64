package account

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campusfind-backend/internal/auth"
	profileDomain "campusfind-backend/internal/domain/profile"
	"campusfind-backend/internal/testutil/profilemock"
)

const testSecret = "test-secret"

func TestUsecase_Register(t *testing.T) {
	var created *profileDomain.Profile
	profiles := &profilemock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*profileDomain.Profile, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, p *profileDomain.Profile) error {
			created = p
			return nil
		},
	}
	uc := NewUsecase(profiles, testSecret)

	dto, err := uc.Register(context.Background(), RegisterInput{
		FullName: "Jane Roe",
		Email:    "  Jane@Uni.Example ",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created == nil {
		t.Fatalf("profile not created")
	}
	if created.Email != "jane@uni.example" {
		t.Fatalf("email not normalized: %q", created.Email)
	}
	if created.Role != profileDomain.RoleStudent {
		t.Fatalf("new accounts must be students, got %s", created.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")) != nil {
		t.Fatalf("password hash does not verify")
	}
	if dto.Token == "" {
		t.Fatalf("token missing")
	}
	claims, err := auth.ValidateToken(testSecret, dto.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.ProfileID != created.ProfileID || claims.Role != "student" {
		t.Fatalf("token claims mismatch: %+v", claims)
	}
}

func TestUsecase_Register_DuplicateEmail(t *testing.T) {
	profiles := &profilemock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*profileDomain.Profile, error) {
			return &profileDomain.Profile{Email: email}, nil
		},
	}
	uc := NewUsecase(profiles, testSecret)

	_, err := uc.Register(context.Background(), RegisterInput{Email: "jane@uni.example", Password: "x"})
	if !errors.Is(err, profileDomain.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestUsecase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	stored := &profileDomain.Profile{
		ProfileID:    "p1",
		Email:        "jane@uni.example",
		PasswordHash: string(hash),
		Role:         profileDomain.RoleAdmin,
	}

	tests := []struct {
		name     string
		email    string
		password string
		found    bool
		wantErr  error
	}{
		{name: "happy path", email: "jane@uni.example", password: "correct-horse", found: true},
		{name: "case-insensitive email", email: "JANE@uni.example", password: "correct-horse", found: true},
		{name: "wrong password", email: "jane@uni.example", password: "nope", found: true, wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@uni.example", password: "correct-horse", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			profiles := &profilemock.Repo{
				GetByEmailFn: func(ctx context.Context, email string) (*profileDomain.Profile, error) {
					if email != "jane@uni.example" || !tt.found {
						return nil, gorm.ErrRecordNotFound
					}
					return stored, nil
				},
			}
			uc := NewUsecase(profiles, testSecret)

			dto, err := uc.Login(context.Background(), LoginInput{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if dto.Profile.Role != "admin" {
				t.Fatalf("role mismatch: %s", dto.Profile.Role)
			}
			if dto.Token == "" {
				t.Fatalf("token missing")
			}
		})
	}
}

func TestUsecase_Me(t *testing.T) {
	profiles := &profilemock.Repo{
		GetByProfileIDFn: func(ctx context.Context, profileID string) (*profileDomain.Profile, error) {
			if profileID != "p1" {
				return nil, gorm.ErrRecordNotFound
			}
			return &profileDomain.Profile{ProfileID: "p1", FullName: "Jane Roe"}, nil
		},
	}
	uc := NewUsecase(profiles, testSecret)

	dto, err := uc.Me(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dto.FullName != "Jane Roe" {
		t.Fatalf("dto mismatch: %+v", dto)
	}

	if _, err := uc.Me(context.Background(), "ghost"); !errors.Is(err, profileDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
