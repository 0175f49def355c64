package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"campusfind-backend/internal/auth"
)

const idempTestSecret = "idempotency-test-secret"

// setupEcho registers one guarded POST route plus a GET route so the
// method bypass can be exercised. hits counts handler invocations.
func setupEcho(rdb *redis.Client, hits *int) *echo.Echo {
	e := echo.New()
	api := e.Group("/api",
		Authenticate(idempTestSecret, rolesByPID()),
		Idempotency(rdb, 24*time.Hour),
	)
	api.POST("/claims", func(c echo.Context) error {
		*hits++
		return c.JSON(http.StatusOK, map[string]any{"success": true, "data": map[string]any{"seq": *hits}})
	})
	api.GET("/ids", func(c echo.Context) error {
		*hits++
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	})
	return e
}

func mkJSONBody(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return b
}

func doReq(e *echo.Echo, method, target string, body []byte, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func freshHeaders(reqID string) map[string]string {
	return map[string]string{
		"Ax-Request-Id": reqID,
		"Ax-Request-At": strconv.FormatInt(time.Now().UTC().Unix(), 10),
	}
}

func TestIdempotency_GetBypass(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var hits int
	e := setupEcho(rdb, &hits)

	// no Ax-* headers at all
	rec := doReq(e, http.MethodGet, "/api/ids", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
}

func TestIdempotency_HeaderValidation(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var hits int
	e := setupEcho(rdb, &hits)

	body := mkJSONBody(t, map[string]any{"item_id": strings.Repeat("a", 32)})

	tests := []struct {
		name string
		hdr  map[string]string
	}{
		{"missing Ax-Request-Id", map[string]string{
			"Ax-Request-At": strconv.FormatInt(time.Now().Unix(), 10),
		}},
		{"malformed Ax-Request-Id", map[string]string{
			"Ax-Request-Id": "not-an-id",
			"Ax-Request-At": strconv.FormatInt(time.Now().Unix(), 10),
		}},
		{"missing Ax-Request-At", map[string]string{
			"Ax-Request-Id": strings.Repeat("a", 32),
		}},
		{"naive timestamp without zone", map[string]string{
			"Ax-Request-Id": strings.Repeat("a", 32),
			"Ax-Request-At": "2026-08-01T10:00:00",
		}},
		{"skewed Ax-Request-At", map[string]string{
			"Ax-Request-Id": strings.Repeat("a", 32),
			"Ax-Request-At": strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doReq(e, http.MethodPost, "/api/claims", body, tt.hdr)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
			}
		})
	}
	if hits != 0 {
		t.Fatalf("handler ran %d times on rejected requests", hits)
	}
}

func TestIdempotency_ReplayReturnsStoredResponse(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var hits int
	e := setupEcho(rdb, &hits)

	body := mkJSONBody(t, map[string]any{"item_id": strings.Repeat("a", 32), "proof": "blue student card, #4567"})
	hdr := freshHeaders(strings.Repeat("c", 32))

	rec1 := doReq(e, http.MethodPost, "/api/claims", body, hdr)
	if rec1.Code != http.StatusOK {
		t.Fatalf("first: status = %d (%s)", rec1.Code, rec1.Body.String())
	}

	rec2 := doReq(e, http.MethodPost, "/api/claims", body, hdr)
	if rec2.Code != http.StatusOK {
		t.Fatalf("replay: status = %d (%s)", rec2.Code, rec2.Body.String())
	}
	if hits != 1 {
		t.Fatalf("handler ran %d times, want 1", hits)
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body differs:\n%s\n%s", rec1.Body.String(), rec2.Body.String())
	}
}

func TestIdempotency_InProgressConflict(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var hits int
	e := setupEcho(rdb, &hits)

	body := mkJSONBody(t, map[string]any{"item_id": strings.Repeat("a", 32)})
	reqID := strings.Repeat("d", 32)

	// simulate a concurrent first attempt still holding the lock
	key := buildKey(http.MethodPost, "/api/claims", "public", reqID)
	ok, err := provisionalSet(context.Background(), rdb, key, idempEntry{
		InProgress: true,
		BodySHA256: bodyHash(body),
		RequestID:  reqID,
		CreatedAt:  nowUTC(),
	})
	if err != nil || !ok {
		t.Fatalf("seed provisional: ok=%v err=%v", ok, err)
	}

	rec := doReq(e, http.MethodPost, "/api/claims", body, freshHeaders(reqID))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
	if hits != 0 {
		t.Fatalf("handler should not run while in progress")
	}
}

func TestIdempotency_BodyMismatchConflict(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var hits int
	e := setupEcho(rdb, &hits)

	reqID := strings.Repeat("e", 32)
	key := buildKey(http.MethodPost, "/api/claims", "public", reqID)
	if err := saveFinal(context.Background(), rdb, key, idempEntry{
		Code:       http.StatusOK,
		Body:       []byte(`{"success":true}`),
		BodySHA256: bodyHash([]byte(`{"item_id":"original"}`)),
		RequestID:  reqID,
		CreatedAt:  nowUTC(),
	}, time.Hour); err != nil {
		t.Fatalf("seed final: %v", err)
	}

	body := mkJSONBody(t, map[string]any{"item_id": "tampered"})
	rec := doReq(e, http.MethodPost, "/api/claims", body, freshHeaders(reqID))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409 (%s)", rec.Code, rec.Body.String())
	}
	if hits != 0 {
		t.Fatalf("handler should not run on body mismatch")
	}
}

func TestIdempotency_CallerSegmentFromToken(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	defer mr.Close()
	var hits int
	e := setupEcho(rdb, &hits)

	profileID := strings.Repeat("b", 32)
	token, err := auth.GenerateToken(idempTestSecret, profileID, "student")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	reqID := strings.Repeat("f", 32)
	hdr := freshHeaders(reqID)
	hdr["Authorization"] = "Bearer " + token

	body := mkJSONBody(t, map[string]any{"item_id": strings.Repeat("a", 32)})
	rec := doReq(e, http.MethodPost, "/api/claims", body, hdr)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}

	wantKey := buildKey(http.MethodPost, "/api/claims", profileID, reqID)
	if !mr.Exists(wantKey) {
		t.Fatalf("expected key scoped to profile id, have keys: %v", mr.Keys())
	}
}

func TestIdempotency_StoreUnavailable(t *testing.T) {
	// nothing is listening here
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond})
	var hits int
	e := setupEcho(rdb, &hits)

	body := mkJSONBody(t, map[string]any{"item_id": strings.Repeat("a", 32)})
	rec := doReq(e, http.MethodPost, "/api/claims", body, freshHeaders(strings.Repeat("a", 32)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 (%s)", rec.Code, rec.Body.String())
	}
	if hits != 0 {
		t.Fatalf("handler should not run when the store is down")
	}
}
