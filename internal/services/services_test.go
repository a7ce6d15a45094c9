package services_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/careerbridge/jobboard/internal/database"
	"github.com/careerbridge/jobboard/internal/dtos"
	"github.com/careerbridge/jobboard/internal/models"
	"github.com/careerbridge/jobboard/internal/services"
)

// newTestDB opens an in-memory sqlite database with the live schema.
// A single connection keeps every query on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func registerUser(t *testing.T, db *gorm.DB, email, role string) uint {
	t.Helper()

	req := &dtos.RegisterRequest{
		Email:    email,
		Password: "s3cret-pass",
		Role:     role,
	}
	switch role {
	case models.RoleApplicant:
		req.FullName = "Test Applicant"
		req.Skills = "Go"
	case models.RoleCompany:
		req.CompanyName = "Test Company"
	}

	id, err := services.NewAuthService(db).Register(context.Background(), req)
	require.NoError(t, err)
	return id
}

func postJob(t *testing.T, db *gorm.DB, userID uint, title string) uint {
	t.Helper()

	id, err := services.NewJobService(db).Post(context.Background(), &dtos.JobPostRequest{
		UserID:         userID,
		JobTitle:       title,
		RequiredSkills: "Go",
		Location:       "Remote",
	})
	require.NoError(t, err)
	return id
}

func applyToJob(t *testing.T, db *gorm.DB, userID, jobID uint) uint {
	t.Helper()

	id, err := services.NewApplicationService(db).Apply(context.Background(), &dtos.ApplyRequest{
		JobID:  jobID,
		UserID: userID,
	})
	require.NoError(t, err)
	return id
}
