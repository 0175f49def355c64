package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/adapter/middleware"
	"campusfind-backend/internal/usecase/account"
)

type AuthHandler struct{ uc *account.Usecase }

func NewAuthHandler(uc *account.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Register(c.Request().Context(), account.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return okMsg(c, http.StatusCreated, "registered", dto)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	dto, err := h.uc.Login(c.Request().Context(), account.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}
	dto, err := h.uc.Me(c.Request().Context(), claims.ProfileID)
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}
