package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/adapter/middleware"
	itemDomain "campusfind-backend/internal/domain/item"
	itemUC "campusfind-backend/internal/usecase/item"
)

type ItemHandler struct {
	uc       *itemUC.Usecase
	uploader MediaUploader
}

func NewItemHandler(uc *itemUC.Usecase, uploader MediaUploader) *ItemHandler {
	return &ItemHandler{uc: uc, uploader: uploader}
}

// Create is the admin intake endpoint: multipart form with an optional image
// part that goes to the media host first.
func (h *ItemHandler) Create(c echo.Context) error {
	actor := middleware.GetProfile(c)
	if actor == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	in := itemUC.CreateInput{
		ActorID:            actor.ProfileID,
		IDType:             c.FormValue("id_type"),
		FullName:           c.FormValue("full_name"),
		RegistrationNumber: c.FormValue("registration_number"),
		SightingLocation:   c.FormValue("sighting_location"),
		HoldingLocation:    c.FormValue("holding_location"),
		Description:        c.FormValue("description"),
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
	return ok(c, http.StatusOK, dto)
}

func (h *ItemHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	f := itemDomain.ListFilter{
		Status: itemDomain.Status(c.QueryParam("status")),
		Page:   page,
		Limit:  limit,
	}

	items, total, err := h.uc.List(c.Request().Context(), f, middleware.IsAdmin(c))
	if err != nil {
		return failFromError(c, err)
	}
	return okList(c, items, newMeta(page, limit, total))
}

func (h *ItemHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("item_id"), middleware.IsAdmin(c))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

type itemStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending verified claimed returned archived"`
}

func (h *ItemHandler) SetStatus(c echo.Context) error {
	actor := middleware.GetProfile(c)
	if actor == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req itemStatusReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.SetStatus(c.Request().Context(), actor.ProfileID, c.Param("item_id"), itemDomain.Status(req.Status))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

type itemUpdateReq struct {
	HoldingLocation *string `json:"holding_location" validate:"omitempty,max=200"`
	Description     *string `json:"description"`
	Visibility      *bool   `json:"visibility"`
}

func (h *ItemHandler) Update(c echo.Context) error {
	actor := middleware.GetProfile(c)
	if actor == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req itemUpdateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("item_id"), itemUC.UpdateInput{
		ActorID:         actor.ProfileID,
		HoldingLocation: req.HoldingLocation,
		Description:     req.Description,
		Visibility:      req.Visibility,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}
