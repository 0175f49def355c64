package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/adapter/middleware"
	submissionUC "campusfind-backend/internal/usecase/submission"
)

type SubmissionHandler struct {
	uc       *submissionUC.Usecase
	uploader MediaUploader
}

func NewSubmissionHandler(uc *submissionUC.Usecase, uploader MediaUploader) *SubmissionHandler {
	return &SubmissionHandler{uc: uc, uploader: uploader}
}

// Create is the only unauthenticated write in the API: a finder reporting an
// ID they picked up. Multipart, image optional.
func (h *SubmissionHandler) Create(c echo.Context) error {
	in := submissionUC.CreateInput{
		IDType:             c.FormValue("id_type"),
		FullName:           c.FormValue("full_name"),
		RegistrationNumber: c.FormValue("registration_number"),
		SightingLocation:   c.FormValue("sighting_location"),
		FinderName:         c.FormValue("finder_name"),
		FinderContact:      c.FormValue("finder_contact"),
	}
	if in.IDType == "" || in.FullName == "" || in.RegistrationNumber == "" {
		return fail(c, http.StatusBadRequest, "id_type, full_name and registration_number are required")
	}

	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return fail(c, http.StatusBadRequest, "unreadable image")
		}
		defer f.Close()
		url, err := h.uploader.Upload(c.Request().Context(), fh.Filename, f)
		if err != nil {
			c.Logger().Error(err)
			return fail(c, http.StatusBadGateway, "image upload failed")
		}
		in.ImageURL = url
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return failFromError(c, err)
	}
	return okMsg(c, http.StatusCreated, "submission received, pending review", dto)
}

func (h *SubmissionHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	var reviewed *bool
	if v := c.QueryParam("reviewed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "reviewed must be a boolean")
		}
		reviewed = &b
	}

	rows, total, err := h.uc.List(c.Request().Context(), reviewed, page, limit)
	if err != nil {
		return failFromError(c, err)
	}
	return okList(c, rows, newMeta(page, limit, total))
}

type reviewReq struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes" validate:"omitempty,max=2000"`
}

func (h *SubmissionHandler) Review(c echo.Context) error {
	actor := middleware.GetProfile(c)
	if actor == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Review(c.Request().Context(), submissionUC.ReviewInput{
		ActorID:      actor.ProfileID,
		SubmissionID: c.Param("submission_id"),
		Approve:      req.Approve,
		Notes:        req.Notes,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}
