package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/adapter/middleware"
	requestDomain "campusfind-backend/internal/domain/lostrequest"
	requestUC "campusfind-backend/internal/usecase/lostrequest"
)

type RequestHandler struct{ uc *requestUC.Usecase }

func NewRequestHandler(uc *requestUC.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type createRequestReq struct {
	IDType             string `json:"id_type"             validate:"required,max=40"`
	FullName           string `json:"full_name"           validate:"required,max=120"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=60"`
	ContactPhone       string `json:"contact_phone"       validate:"omitempty,max=30"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Create(c.Request().Context(), requestUC.CreateInput{
		OwnerID:            claims.ProfileID,
		IDType:             req.IDType,
		FullName:           req.FullName,
		RegistrationNumber: req.RegistrationNumber,
		ContactPhone:       req.ContactPhone,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusCreated, dto)
}

func (h *RequestHandler) List(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	page, limit := pageParams(c)
	owner := claims.ProfileID
	if middleware.IsAdmin(c) {
		owner = ""
	}

	rows, total, err := h.uc.List(c.Request().Context(), owner, requestDomain.Status(c.QueryParam("status")), page, limit)
	if err != nil {
		return failFromError(c, err)
	}
	return okList(c, rows, newMeta(page, limit, total))
}

func (h *RequestHandler) Get(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"), claims.ProfileID, middleware.IsAdmin(c))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

type updateRequestReq struct {
	FullName           *string `json:"full_name"           validate:"omitempty,max=120"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=60"`
	ContactPhone       *string `json:"contact_phone"       validate:"omitempty,max=30"`
}

func (h *RequestHandler) Update(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req updateRequestReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Update(c.Request().Context(), c.Param("request_id"), requestUC.UpdateInput{
		RequesterID:        claims.ProfileID,
		RequesterIsAdmin:   middleware.IsAdmin(c),
		FullName:           req.FullName,
		RegistrationNumber: req.RegistrationNumber,
		ContactPhone:       req.ContactPhone,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

func (h *RequestHandler) Delete(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	err := h.uc.Delete(c.Request().Context(), c.Param("request_id"), claims.ProfileID, middleware.IsAdmin(c))
	if err != nil {
		return failFromError(c, err)
	}
	return okMsg(c, http.StatusOK, "deleted", nil)
}

type requestStatusReq struct {
	Status        string `json:"status"          validate:"required,oneof=matched closed"`
	MatchedItemID string `json:"matched_item_id" validate:"omitempty,hex32"`
}

func (h *RequestHandler) SetStatus(c echo.Context) error {
	actor := middleware.GetProfile(c)
	if actor == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req requestStatusReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.SetStatus(c.Request().Context(), requestUC.SetStatusInput{
		ActorID:       actor.ProfileID,
		RequestID:     c.Param("request_id"),
		Status:        requestDomain.Status(req.Status),
		MatchedItemID: req.MatchedItemID,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}
