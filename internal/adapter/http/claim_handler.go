package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/adapter/middleware"
	claimDomain "campusfind-backend/internal/domain/claim"
	claimUC "campusfind-backend/internal/usecase/claim"
)

type ClaimHandler struct{ uc *claimUC.Usecase }

func NewClaimHandler(uc *claimUC.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

type createClaimReq struct {
	ItemID           string `json:"item_id"           validate:"required,hex32"`
	ProofDescription string `json:"proof_description" validate:"required,min=10"`
}

func (h *ClaimHandler) Create(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req createClaimReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Submit(c.Request().Context(), claimUC.SubmitInput{
		ItemID:           req.ItemID,
		ClaimantID:       claims.ProfileID,
		ProofDescription: req.ProofDescription,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

func (h *ClaimHandler) List(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	page, limit := pageParams(c)
	claimant := claims.ProfileID
	if middleware.IsAdmin(c) {
		claimant = "" // admins see every claim
	}

	rows, total, err := h.uc.List(c.Request().Context(), claimant, claimDomain.Status(c.QueryParam("status")), page, limit)
	if err != nil {
		return failFromError(c, err)
	}
	return okList(c, rows, newMeta(page, limit, total))
}

func (h *ClaimHandler) Get(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	requester := claims.ProfileID
	if middleware.IsAdmin(c) {
		requester = ""
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("claim_id"), requester)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

type adjudicateReq struct {
	Status     string `json:"status"      validate:"required,oneof=pending approved rejected completed"`
	AdminNotes string `json:"admin_notes" validate:"omitempty,max=2000"`
}

func (h *ClaimHandler) Adjudicate(c echo.Context) error {
	actor := middleware.GetProfile(c)
	if actor == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req adjudicateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Adjudicate(c.Request().Context(), claimUC.AdjudicateInput{
		ActorID:    actor.ProfileID,
		ClaimID:    c.Param("claim_id"),
		Status:     claimDomain.Status(req.Status),
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}
