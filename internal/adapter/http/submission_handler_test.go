package http

import (
	"bytes"
	"context"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	itemDomain "campusfind-backend/internal/domain/item"
	submissionDomain "campusfind-backend/internal/domain/submission"
	"campusfind-backend/internal/testutil/itemmock"
	"campusfind-backend/internal/testutil/submissionmock"
)

var submissionPID = strings.Repeat("5", 32)

func TestCreateSubmission_Public(t *testing.T) {
	var created *submissionDomain.Submission
	subs := &submissionmock.Repo{
		CreateFn: func(ctx context.Context, s *submissionDomain.Submission) error {
			created = s
			return nil
		},
	}
	e := newApp(&testRepos{subs: subs})

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("id_type", "student_card")
	_ = w.WriteField("full_name", "Jane Roe")
	_ = w.WriteField("registration_number", "U2019/1234567")
	_ = w.WriteField("finder_name", "Sam Finder")
	part, _ := w.CreateFormFile("image", "card.jpg")
	_, _ = part.Write([]byte("jpegdata"))
	_ = w.Close()

	// no Authorization header at all: public endpoint
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/submissions", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}
	if created == nil {
		t.Fatalf("submission not created")
	}
	if created.ImageURL != "https://img.example/card.jpg" {
		t.Fatalf("image not uploaded: %q", created.ImageURL)
	}
	if created.Approved != nil {
		t.Fatalf("new submission must be unreviewed")
	}
}

func TestReviewSubmission_ApproveCreatesItem(t *testing.T) {
	var createdItem *itemDomain.FoundItem
	subs := &submissionmock.Repo{
		GetBySubmissionIDForUpdateFn: func(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
			return &submissionDomain.Submission{
				ID:                 3,
				SubmissionID:       submissionID,
				IDType:             "student_card",
				FullName:           "Jane Roe",
				RegistrationNumber: "U2019/1234567",
			}, nil
		},
	}
	items := &itemmock.Repo{
		CreateFn: func(ctx context.Context, it *itemDomain.FoundItem) error {
			createdItem = it
			return nil
		},
	}
	e := newApp(&testRepos{subs: subs, items: items, profiles: roleProfiles()})

	rec := doJSON(e, stdhttp.MethodPost, "/api/admin/submissions/"+submissionPID+"/review",
		bearerFor(t, adminPID, "admin"), map[string]any{"approve": true, "notes": "Looks genuine"})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if createdItem == nil || createdItem.Status != itemDomain.StatusVerified {
		t.Fatalf("approval should create a verified item: %+v", createdItem)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["item_id"] == nil || data["item_id"] == "" {
		t.Fatalf("dto missing created item id: %v", data)
	}
}

func TestReviewSubmission_Terminal(t *testing.T) {
	reviewer := adminPID
	approved := true
	subs := &submissionmock.Repo{
		GetBySubmissionIDForUpdateFn: func(ctx context.Context, submissionID string) (*submissionDomain.Submission, error) {
			return &submissionDomain.Submission{
				ID:           3,
				SubmissionID: submissionID,
				Approved:     &approved,
				ReviewedBy:   &reviewer,
			}, nil
		},
	}
	e := newApp(&testRepos{subs: subs, profiles: roleProfiles()})

	rec := doJSON(e, stdhttp.MethodPost, "/api/admin/submissions/"+submissionPID+"/review",
		bearerFor(t, adminPID, "admin"), map[string]any{"approve": false})
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
	}
}
