package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, user *models.User) (*dto.ProfileResponse, error)

	// UpdateProfile меняет профиль и отображаемые поля пользователя в одной транзакции
	UpdateProfile(ctx context.Context, db *gorm.DB, user *models.User, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	validator   *validator.Validator
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	v *validator.Validator,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		validator:   v,
	}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, user *models.User) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(db, user.ProfileID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, db *gorm.DB, user *models.User, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if !auth.CanEditProfile(user) {
		return nil, apperrors.ErrProfileUpdateForbidden
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationError(err)
	}

	profileFields := map[string]interface{}{}
	if req.Gender != nil {
		profileFields["gender"] = strings.TrimSpace(*req.Gender)
	}
	if req.About != nil {
		profileFields["about"] = *req.About
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			profileFields["date_of_birth"] = nil
		} else {
			dob, err := time.Parse(dto.DateOfBirthLayout, *req.DateOfBirth)
			if err != nil {
				return nil, apperrors.ValidationError(map[string]string{"dateOfBirth": "Must be a date in format 2006-01-02"})
			}
			profileFields["date_of_birth"] = dob
		}
	}

	userFields := map[string]interface{}{}
	setTrimmed := func(column string, v *string) {
		if v != nil {
			userFields[column] = strings.TrimSpace(*v)
		}
	}
	setTrimmed("first_name", req.FirstName)
	setTrimmed("last_name", req.LastName)
	setTrimmed("contact_number", req.ContactNumber)
	setTrimmed("company", req.Company)
	setTrimmed("education", req.Education)
	setTrimmed("experience", req.Experience)
	if req.Skills != nil {
		tmp := models.User{}
		tmp.SetSkills(*req.Skills)
		userFields["skills"] = tmp.Skills
	}

	profile, err := s.profileRepo.FindByID(db, user.ProfileID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.UpdateFields(tx, profile, profileFields); err != nil {
			return err
		}
		return s.userRepo.UpdateFields(tx, user, userFields)
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	updated, err := s.profileRepo.FindByID(db, user.ProfileID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	logger.CtxInfo(ctx, "Profile updated", "profile_id", updated.ID, "user_fields", len(userFields))
	return dto.NewProfileResponse(updated), nil
}

func handleProfileError(err error) error {
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrProfileNotFound
	}
	return apperrors.DatabaseError(err)
}
