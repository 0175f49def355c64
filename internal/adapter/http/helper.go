package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	claimDomain "campusfind-backend/internal/domain/claim"
	itemDomain "campusfind-backend/internal/domain/item"
	requestDomain "campusfind-backend/internal/domain/lostrequest"
	notifDomain "campusfind-backend/internal/domain/notification"
	profileDomain "campusfind-backend/internal/domain/profile"
	submissionDomain "campusfind-backend/internal/domain/submission"
	"campusfind-backend/internal/usecase/account"
	claimUC "campusfind-backend/internal/usecase/claim"
)

// Meta carries pagination info in the response envelope.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Envelope is the uniform response shape: { success, message?, data?, meta? }.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Meta    *Meta        `json:"meta,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

func ok(c echo.Context, code int, data any) error {
	return c.JSON(code, Envelope{Success: true, Data: data})
}

func okMsg(c echo.Context, code int, msg string, data any) error {
	return c.JSON(code, Envelope{Success: true, Message: msg, Data: data})
}

func okList(c echo.Context, data any, meta Meta) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Meta: &meta})
}

func fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, Envelope{Success: false, Message: msg})
}

func failValidation(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "validation failed",
		Details: ToFieldErrors(err),
	})
}

// failFromError maps domain errors onto the HTTP status taxonomy:
// 400 bad input, 401/403 auth, 404 missing, 409 conflicting state, 500 rest.
func failFromError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, profileDomain.ErrDuplicateEmail),
		errors.Is(err, claimDomain.ErrItemNotClaimable),
		errors.Is(err, claimDomain.ErrDuplicateClaim),
		errors.Is(err, claimUC.ErrProofTooShort),
		errors.Is(err, requestDomain.ErrNotEditable),
		errors.Is(err, requestDomain.ErrNotDeletable),
		errors.Is(err, requestDomain.ErrMatchedItemRequired),
		errors.Is(err, submissionDomain.ErrAlreadyReviewed):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itemDomain.ErrInvalidTransition),
		errors.Is(err, claimDomain.ErrInvalidTransition),
		errors.Is(err, requestDomain.ErrInvalidTransition):
		return fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, itemDomain.ErrNotFound),
		errors.Is(err, claimDomain.ErrNotFound),
		errors.Is(err, requestDomain.ErrNotFound),
		errors.Is(err, submissionDomain.ErrNotFound),
		errors.Is(err, notifDomain.ErrNotFound),
		errors.Is(err, profileDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return fail(c, http.StatusNotFound, "not found")
	default:
		c.Logger().Error(err)
		return fail(c, http.StatusInternalServerError, "internal error")
	}
}

func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func newMeta(page, limit int, total int64) Meta {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
