package db

import (
	"log"
	"time"

	"campusfind-backend/internal/domain/audit"
	"campusfind-backend/internal/domain/claim"
	"campusfind-backend/internal/domain/item"
	"campusfind-backend/internal/domain/lostrequest"
	"campusfind-backend/internal/domain/notification"
	"campusfind-backend/internal/domain/profile"
	"campusfind-backend/internal/domain/submission"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector exists so tests can inject a mocked dialector.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates or updates the schema for every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&profile.Profile{},
		&item.FoundItem{},
		&claim.Claim{},
		&lostrequest.LostRequest{},
		&submission.Submission{},
		&notification.Notification{},
		&audit.Entry{},
	)
}
