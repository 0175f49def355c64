package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// MediaUploader pushes image bytes to the third-party host and returns the
// public URL.
type MediaUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
