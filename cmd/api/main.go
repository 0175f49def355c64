package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "campusfind-backend/internal/adapter/http"
	"campusfind-backend/internal/adapter/middleware"
	"campusfind-backend/internal/adapter/repository/mysql"
	"campusfind-backend/internal/config"
	"campusfind-backend/internal/infrastructure/cache"
	"campusfind-backend/internal/infrastructure/db"
	"campusfind-backend/internal/infrastructure/mailer"
	"campusfind-backend/internal/infrastructure/media"
	"campusfind-backend/internal/usecase/account"
	"campusfind-backend/internal/usecase/auditlog"
	claimUC "campusfind-backend/internal/usecase/claim"
	itemUC "campusfind-backend/internal/usecase/item"
	requestUC "campusfind-backend/internal/usecase/lostrequest"
	notifUC "campusfind-backend/internal/usecase/notification"
	"campusfind-backend/internal/usecase/notify"
	submissionUC "campusfind-backend/internal/usecase/submission"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	profileRepo := mysql.NewProfileRepository(gdb)
	itemRepo := mysql.NewItemRepository(gdb)
	claimRepo := mysql.NewClaimRepository(gdb)
	requestRepo := mysql.NewLostRequestRepository(gdb)
	submissionRepo := mysql.NewSubmissionRepository(gdb)
	notifRepo := mysql.NewNotificationRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// outbound services
	emailer := notify.NewEmailer(mailer.New(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFrom), cfg.MailEnabled)
	uploader := media.New(cfg.MediaUploadURL, cfg.MediaAPIKey)

	// usecases
	accountUsecase := account.NewUsecase(profileRepo, cfg.JWTSecret)
	itemUsecase := itemUC.NewUsecase(itemRepo, unit)
	claimUsecase := claimUC.NewUsecase(claimRepo, itemRepo, profileRepo, unit, emailer)
	requestUsecase := requestUC.NewUsecase(requestRepo, itemRepo, profileRepo, unit, emailer)
	submissionUsecase := submissionUC.NewUsecase(submissionRepo, unit)
	notifUsecase := notifUC.NewUsecase(notifRepo, profileRepo, unit, emailer)
	auditUsecase := auditlog.NewUsecase(auditRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	api := e.Group("/api",
		middleware.Authenticate(cfg.JWTSecret, profileRepo),
		middleware.Gatekeeper("/api/claims", "/api/notifications", "/api/requests", "/api/admin"),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)

	httpadp.RegisterRoutes(e, api, httpadp.Handlers{
		Base:          httpadp.NewHandler(),
		Auth:          httpadp.NewAuthHandler(accountUsecase),
		Items:         httpadp.NewItemHandler(itemUsecase, uploader),
		Claims:        httpadp.NewClaimHandler(claimUsecase),
		Requests:      httpadp.NewRequestHandler(requestUsecase),
		Submissions:   httpadp.NewSubmissionHandler(submissionUsecase, uploader),
		Notifications: httpadp.NewNotificationHandler(notifUsecase),
		Audit:         httpadp.NewAuditHandler(auditUsecase),
	})

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
