package services_test

import (
	"context"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)

	skills := dto.SkillList{"rust"}
	res, err := f.svc.ProfileService.UpdateProfile(context.Background(), f.db, user, &dto.UpdateProfileRequest{
		Gender:      ptr("female"),
		DateOfBirth: ptr("1990-04-12"),
		About:       ptr("Backend developer"),
		FirstName:   ptr(" Grace "),
		Skills:      &skills,
	})
	require.NoError(t, err)

	assert.Equal(t, "female", res.Gender)
	assert.Equal(t, "Backend developer", res.About)
	require.NotNil(t, res.DateOfBirth)
	assert.Equal(t, "1990-04-12", res.DateOfBirth.Format(dto.DateOfBirthLayout))
	assert.NotNil(t, res.AppliedJobs)

	var stored models.User
	require.NoError(t, f.db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "Grace", stored.FirstName)
	assert.Equal(t, []string{"rust"}, stored.GetSkills())
	assert.Equal(t, user.Email, stored.Email)
	assert.Equal(t, models.UserRoleJobSeeker, stored.AccountType)
}

func TestUpdateProfile_InvalidDate(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)

	_, err := f.svc.ProfileService.UpdateProfile(context.Background(), f.db, user, &dto.UpdateProfileRequest{
		DateOfBirth: ptr("12/04/1990"),
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Contains(t, appErr.Details, "dateOfBirth")
}

func TestGetProfile_Missing(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	require.NoError(t, f.db.Delete(&models.Profile{}, "id = ?", user.ProfileID).Error)

	_, err := f.svc.ProfileService.GetProfile(f.db, user)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestUpdateProfile_UnknownRoleForbidden(t *testing.T) {
	// 1. Подготовка
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, models.UserRoleJobSeeker)
	user.AccountType = models.UserRole("guest")

	// 2. Действие
	_, err := f.svc.ProfileService.UpdateProfile(context.Background(), f.db, user, &dto.UpdateProfileRequest{
		About: ptr("should not be stored"),
	})

	// 3. Проверка
	assert.ErrorIs(t, err, apperrors.ErrProfileUpdateForbidden)
	var profile models.Profile
	require.NoError(t, f.db.First(&profile, "id = ?", user.ProfileID).Error)
	assert.Empty(t, profile.About)
}
