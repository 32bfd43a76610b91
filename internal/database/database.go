package database

import (
	"fmt"

	"github.com/seva-foundation/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and runs auto-migration.
func Connect(dsn string, dev bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if dev {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               dsn,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Required for duplicate-key errors to surface as
		// gorm.ErrDuplicatedKey instead of the raw driver error.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ContactModel{},
		&models.VolunteerModel{},
		&models.DonationModel{},
		&models.NewsletterModel{},
		&models.BlogPostModel{},
	)
}
