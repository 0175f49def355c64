package http

import (
	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/usecase/auditlog"
)

type AuditHandler struct{ uc *auditlog.Usecase }

func NewAuditHandler(uc *auditlog.Usecase) *AuditHandler { return &AuditHandler{uc: uc} }

func (h *AuditHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	rows, total, err := h.uc.List(c.Request().Context(), c.QueryParam("action"), c.QueryParam("entity_type"), page, limit)
	if err != nil {
		return failFromError(c, err)
	}
	return okList(c, rows, newMeta(page, limit, total))
}
