package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	auditDomain "campusfind-backend/internal/domain/audit"
	notifDomain "campusfind-backend/internal/domain/notification"
	profileDomain "campusfind-backend/internal/domain/profile"
	"campusfind-backend/internal/domain/uow"
	"campusfind-backend/internal/testutil/auditmock"
	"campusfind-backend/internal/testutil/mailermock"
	"campusfind-backend/internal/testutil/notifmock"
	"campusfind-backend/internal/testutil/profilemock"
	"campusfind-backend/internal/testutil/uowmock"
	"campusfind-backend/internal/usecase/notify"
)

var userPID = strings.Repeat("b", 32)

func userProfiles() *profilemock.Repo {
	return &profilemock.Repo{
		GetByProfileIDFn: func(ctx context.Context, profileID string) (*profileDomain.Profile, error) {
			if profileID != userPID {
				return nil, gorm.ErrRecordNotFound
			}
			return &profileDomain.Profile{ID: 7, ProfileID: userPID, Email: "jane@uni.example"}, nil
		},
	}
}

func TestUsecase_MarkRead(t *testing.T) {
	tests := []struct {
		name    string
		row     *notifDomain.Notification
		wantErr error
		saves   bool
	}{
		{
			name:  "unread becomes read",
			row:   &notifDomain.Notification{ID: 1, NotificationID: strings.Repeat("n", 32), UserID: 7},
			saves: true,
		},
		{
			name: "already read is a no-op",
			row:  &notifDomain.Notification{ID: 1, NotificationID: strings.Repeat("n", 32), UserID: 7, IsRead: true},
		},
		{
			name:    "someone else's row hidden",
			row:     &notifDomain.Notification{ID: 1, NotificationID: strings.Repeat("n", 32), UserID: 99},
			wantErr: notifDomain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			saved := false
			repo := &notifmock.Repo{
				GetByNotificationIDFn: func(ctx context.Context, notificationID string) (*notifDomain.Notification, error) {
					return tt.row, nil
				},
				SaveFn: func(ctx context.Context, n *notifDomain.Notification) error {
					saved = true
					if !n.IsRead {
						t.Fatalf("saved row should be read")
					}
					return nil
				},
			}
			uc := NewUsecase(repo, userProfiles(), uowmock.New(), notify.NewEmailer(nil, false))

			dto, err := uc.MarkRead(context.Background(), userPID, strings.Repeat("n", 32))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if saved != tt.saves {
				t.Fatalf("saved=%v, want %v", saved, tt.saves)
			}
			if !dto.IsRead {
				t.Fatalf("dto should be read")
			}
		})
	}
}

func TestUsecase_MarkAllRead(t *testing.T) {
	var gotUser uint64
	repo := &notifmock.Repo{
		MarkAllReadFn: func(ctx context.Context, userID uint64) error {
			gotUser = userID
			return nil
		},
	}
	uc := NewUsecase(repo, userProfiles(), uowmock.New(), notify.NewEmailer(nil, false))

	if err := uc.MarkAllRead(context.Background(), userPID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotUser != 7 {
		t.Fatalf("wrong user id: %d", gotUser)
	}
}

func TestUsecase_Broadcast(t *testing.T) {
	mail := &mailermock.Mailer{}
	var batch []notifDomain.Notification
	var auditEntry *auditDomain.Entry

	profiles := &profilemock.Repo{
		ListActiveFn: func(ctx context.Context) ([]profileDomain.Profile, error) {
			return []profileDomain.Profile{
				{ID: 1, Email: "a@uni.example"},
				{ID: 2, Email: "b@uni.example"},
				{ID: 3, Email: "c@uni.example"},
			}, nil
		},
	}
	repo := &notifmock.Repo{
		CreateBatchFn: func(ctx context.Context, ns []notifDomain.Notification) error {
			batch = ns
			return nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{
		Profiles:      profiles,
		Notifications: repo,
		Audit: &auditmock.Repo{AppendFn: func(ctx context.Context, e *auditDomain.Entry) error {
			auditEntry = e
			return nil
		}},
	})
	uc := NewUsecase(repo, profiles, tx, notify.NewEmailer(mail, true))

	count, err := uc.Broadcast(context.Background(), BroadcastInput{
		ActorID: strings.Repeat("d", 32),
		Title:   "Office closed Friday",
		Message: "Collection resumes Monday morning.",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if count != 3 || len(batch) != 3 {
		t.Fatalf("expected 3 rows, got count=%d len=%d", count, len(batch))
	}
	for i := range batch {
		if batch[i].Type != notifDomain.TypeBroadcast {
			t.Fatalf("row %d type %s", i, batch[i].Type)
		}
		if len(batch[i].NotificationID) != 32 {
			t.Fatalf("row %d id not generated", i)
		}
	}
	if auditEntry == nil || auditEntry.Action != auditDomain.ActionBroadcast {
		t.Fatalf("audit entry wrong: %+v", auditEntry)
	}
	if got := len(mail.Messages()); got != 3 {
		t.Fatalf("expected 3 emails, got %d", got)
	}
}

func TestUsecase_Broadcast_RequiresContent(t *testing.T) {
	uc := NewUsecase(nil, nil, uowmock.New(), notify.NewEmailer(nil, false))
	if _, err := uc.Broadcast(context.Background(), BroadcastInput{Title: " ", Message: ""}); err == nil {
		t.Fatalf("expected validation error")
	}
}
