// Package testutil содержит хелперы для тестов: in-memory БД и фикстуры.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const DefaultPassword = "secret123"

// NewTestDB открывает отдельную in-memory SQLite базу на тест и мигрирует схему
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// одно соединение: shared cache не поддерживает параллельную запись
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateUser создает пользователя с профилем и паролем DefaultPassword
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(DefaultPassword)
	require.NoError(t, err)

	profile := &models.Profile{}
	require.NoError(t, db.Create(profile).Error)

	id := uuid.NewString()
	user := &models.User{
		FirstName:     "Test",
		LastName:      string(role),
		Email:         strings.ToLower(fmt.Sprintf("%s-%s@example.com", role, id[:8])),
		ContactNumber: "5550100",
		Password:      hash,
		AccountType:   role,
		ProfileID:     profile.ID,
	}
	user.SetSkills(nil)
	require.NoError(t, db.Create(user).Error)
	user.Profile = profile
	return user
}

// CreateJob создает вакансию от имени poster; opts могут изменить поля до сохранения
func CreateJob(t *testing.T, db *gorm.DB, poster *models.User, opts ...func(*models.Job)) *models.Job {
	t.Helper()

	job := &models.Job{
		JobTitle:           "Backend Engineer",
		JobDescription:     "Build and run services",
		CompanyName:        "Acme",
		Location:           "Remote",
		JobType:            models.JobTypeFullTime,
		SalaryRange:        "50000-70000",
		MinSalary:          50000,
		ExperienceRequired: models.DefaultExperience,
		PostedBy:           poster.ID,
		PostedDate:         time.Now().UTC(),
		IsActive:           true,
	}
	job.SetSkills([]string{"go", "sql"})
	for _, opt := range opts {
		opt(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
