package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/foundercollab/backend/internal/config"
	"github.com/foundercollab/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.StartupIdea{},
		&models.Match{},
		&models.Message{},
		&models.Notification{},
		&models.SystemLog{},
	)
}

// SchemaReady reports whether the core tables have been provisioned.
func SchemaReady(db *gorm.DB) bool {
	m := db.Migrator()
	return m.HasTable(&models.Profile{}) &&
		m.HasTable(&models.StartupIdea{}) &&
		m.HasTable(&models.Match{})
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
