package services

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	JobService          JobService
	ApplicationService  ApplicationService
	ProfileService      ProfileService
	UploadService       UploadService
	NotificationService NotificationService
}

// Dependencies - внешние зависимости, из которых собираются сервисы
type Dependencies struct {
	Storage       storage.Storage
	EmailProvider email.Provider
	Tokens        *auth.TokenManager
	Validator     *validator.Validator
	UploadConfig  *UploadConfig
}

// NewServiceContainer собирает сервисы; репозитории не хранят состояние и создаются здесь
func NewServiceContainer(deps Dependencies) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	v := deps.Validator
	if v == nil {
		v = validator.New()
	}

	uploadService := NewUploadService(deps.Storage, deps.UploadConfig)
	notificationService := NewNotificationService(deps.EmailProvider)

	return &ServiceContainer{
		AuthService:   NewAuthService(userRepo, profileRepo, uploadService, deps.Tokens, v),
		JobService:    NewJobService(jobRepo, v),
		ProfileService: NewProfileService(profileRepo, userRepo, v),
		ApplicationService: NewApplicationService(
			applicationRepo,
			jobRepo,
			profileRepo,
			userRepo,
			uploadService,
			notificationService,
			v,
		),
		UploadService:       uploadService,
		NotificationService: notificationService,
	}
}
