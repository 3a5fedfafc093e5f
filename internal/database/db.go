package database

import (
	"github.com/firstshift/jobboard/internal/config"
	"github.com/firstshift/jobboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres connection and runs schema migration.
// TranslateError makes unique-index violations surface as
// gorm.ErrDuplicatedKey so services can map them to conflicts.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema. Runs once at process start;
// there is deliberately no runtime endpoint that alters tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{})
}
