package services

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const avatarBaseURL = "https://api.dicebear.com/5.x/initials/svg?seed="

type AuthService interface {
	// Register создает профиль и пользователя в одной транзакции
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)

	// Login проверяет пароль и выпускает токен
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error)

	// Authenticate проверяет токен и загружает пользователя вместе с профилем
	Authenticate(db *gorm.DB, token string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	uploadService UploadService
	tokens        *auth.TokenManager
	validator     *validator.Validator
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	uploadService UploadService,
	tokens *auth.TokenManager,
	v *validator.Validator,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		uploadService: uploadService,
		tokens:        tokens,
		validator:     v,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if req.MissingRequired() {
		return nil, apperrors.ErrMissingRegistrationFields
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationError(err)
	}

	exists, err := s.userRepo.ExistsByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profileImage := defaultAvatar(req.FirstName, req.LastName)
	var imageKey string
	if req.ProfileImage != nil {
		imageKey, profileImage, err = s.uploadService.SaveProfileImage(ctx, req.ProfileImage)
		if err != nil {
			return nil, err
		}
	}

	user := &models.User{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         req.Email,
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Password:      hashedPassword,
		AccountType:   req.AccountType,
		ProfileImage:  profileImage,
		Company:       req.Company,
		Education:     req.Education,
		Experience:    req.Experience,
		Active:        true,
	}
	user.SetSkills(req.Skills)

	err = db.Transaction(func(tx *gorm.DB) error {
		profile := &models.Profile{}
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return err
		}
		user.ProfileID = profile.ID
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
	if err != nil {
		s.uploadService.Remove(ctx, imageKey)
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "account_type", user.AccountType)
	return user, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperrors.NewBadRequestError("Please fill up all the required fields")
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// сравнение с фиктивным хешем выравнивает время ответа
			auth.CheckPasswordHash(req.Password, dummyHash())
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResult{Token: token, User: user}, nil
}

func (s *AuthServiceImpl) Authenticate(db *gorm.DB, token string) (*models.User, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken.WithError(err)
	}

	user, err := s.userRepo.FindByID(db, claims.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func defaultAvatar(firstName, lastName string) string {
	seed := strings.TrimSpace(firstName + " " + lastName)
	return avatarBaseURL + strings.ReplaceAll(url.QueryEscape(seed), "+", "%20")
}

var dummyHash = sync.OnceValue(func() string {
	hash, _ := auth.HashPassword("not-a-real-password")
	return hash
})

// validationError переводит *validator.ValidationError в AppError с деталями
func validationError(err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return apperrors.ValidationError(verr.Errors)
	}
	return apperrors.InternalError(err)
}
