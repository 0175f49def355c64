package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/adapter/middleware"
	notifUC "campusfind-backend/internal/usecase/notification"
)

type NotificationHandler struct{ uc *notifUC.Usecase }

func NewNotificationHandler(uc *notifUC.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) List(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	page, limit := pageParams(c)
	unread, _ := strconv.ParseBool(c.QueryParam("unread"))

	rows, total, err := h.uc.List(c.Request().Context(), claims.ProfileID, unread, page, limit)
	if err != nil {
		return failFromError(c, err)
	}
	return okList(c, rows, newMeta(page, limit, total))
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	dto, err := h.uc.MarkRead(c.Request().Context(), claims.ProfileID, c.Param("notification_id"))
	if err != nil {
		return failFromError(c, err)
	}
	return ok(c, http.StatusOK, dto)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), claims.ProfileID); err != nil {
		return failFromError(c, err)
	}
	return okMsg(c, http.StatusOK, "all notifications marked read", nil)
}

type broadcastReq struct {
	Title   string `json:"title"   validate:"required,max=150"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (h *NotificationHandler) Broadcast(c echo.Context) error {
	actor := middleware.GetProfile(c)
	if actor == nil {
		return fail(c, http.StatusUnauthorized, "authentication required")
	}

	var req broadcastReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return failValidation(c, err)
	}

	count, err := h.uc.Broadcast(c.Request().Context(), notifUC.BroadcastInput{
		ActorID: actor.ProfileID,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return failFromError(c, err)
	}
	return okMsg(c, http.StatusOK, "broadcast sent", map[string]int{"recipients": count})
}
