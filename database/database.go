// database.go - Handles database connection and setup

package database

import (
	"go-job-portal/logger"
	"go-job-portal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB // Global database connection

// Connect opens the SQLite database, runs migrations, and caps the
// connection pool. TranslateError makes unique-constraint violations
// surface as gorm.ErrDuplicatedKey, which the repositories rely on as
// the source of truth for duplicate detection.
func Connect(dbPath string, maxConns int) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return err
	}

	// SQLite leaves foreign keys off unless asked; cascades depend on this.
	if err := DB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(maxConns)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
	); err != nil {
		return err
	}

	logger.Logger.Infow("database ready", "path", dbPath, "max_conns", maxConns)
	return nil
}
