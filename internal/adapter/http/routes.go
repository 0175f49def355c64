package http

import (
	"github.com/labstack/echo/v4"

	"campusfind-backend/internal/adapter/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Base          *Handler
	Auth          *AuthHandler
	Items         *ItemHandler
	Claims        *ClaimHandler
	Requests      *RequestHandler
	Submissions   *SubmissionHandler
	Notifications *NotificationHandler
	Audit         *AuditHandler
}

// RegisterRoutes wires the API surface. The gatekeeper and idempotency
// middleware are applied by the caller at the /api group level.
func RegisterRoutes(e *echo.Echo, api *echo.Group, h Handlers) {
	e.GET("/health", h.Base.Health)

	adminOnly := echo.MiddlewareFunc(middleware.RequireAdmin)

	// auth
	authg := api.Group("/auth")
	authg.POST("/register", h.Auth.Register)
	authg.POST("/login", h.Auth.Login)
	authg.GET("/me", h.Auth.Me, middleware.RequireAuth)

	// found items (public read, admin intake)
	ids := api.Group("/ids")
	ids.GET("", h.Items.List)
	ids.GET("/:item_id", h.Items.Get)
	ids.POST("", h.Items.Create, adminOnly)

	// claims (authenticated; gatekeeper already rejects anonymous callers)
	claims := api.Group("/claims")
	claims.POST("", h.Claims.Create)
	claims.GET("", h.Claims.List)
	claims.GET("/:claim_id", h.Claims.Get)

	// lost requests
	reqs := api.Group("/requests")
	reqs.POST("", h.Requests.Create)
	reqs.GET("", h.Requests.List)
	reqs.GET("/:request_id", h.Requests.Get)
	reqs.PATCH("/:request_id", h.Requests.Update)
	reqs.DELETE("/:request_id", h.Requests.Delete)

	// public finder submissions
	api.POST("/submissions", h.Submissions.Create)

	// notifications
	notifs := api.Group("/notifications")
	notifs.GET("", h.Notifications.List)
	notifs.PATCH("/:notification_id/read", h.Notifications.MarkRead)
	notifs.POST("/read-all", h.Notifications.MarkAllRead)

	// admin surface
	admin := api.Group("/admin", adminOnly)
	admin.PATCH("/ids/:item_id", h.Items.Update)
	admin.PATCH("/ids/:item_id/status", h.Items.SetStatus)
	admin.PATCH("/claims/:claim_id", h.Claims.Adjudicate)
	admin.PATCH("/requests/:request_id/status", h.Requests.SetStatus)
	admin.GET("/submissions", h.Submissions.List)
	admin.POST("/submissions/:submission_id/review", h.Submissions.Review)
	admin.POST("/notifications/broadcast", h.Notifications.Broadcast)
	admin.GET("/audit", h.Audit.List)
}
