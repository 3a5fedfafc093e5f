package services

import (
	"fmt"
	"testing"

	"github.com/firstshift/jobboard/internal/auth"
	"github.com/firstshift/jobboard/internal/database"
	"github.com/firstshift/jobboard/internal/dtos"
	"github.com/firstshift/jobboard/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the real schema.
// cache=shared keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestJob(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		OwnerID:     owner.ID,
		Status:      models.JobStatusActive,
		Title:       title,
		CompanyName: "Acme Corp",
		JobType:     "part-time",
		Tags:        "retail,weekend",
		Description: "Help out at the shop",
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func testForm() *dtos.ApplicationForm {
	return &dtos.ApplicationForm{
		CoverLetter:   "I would love to work here.",
		TermsAccepted: true,
	}
}
