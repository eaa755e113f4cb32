package services

import (
	"context"
	"errors"
	"path"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/telemetry"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// Apply сохраняет резюме и в одной транзакции создает отклик,
	// заглушку в вакансии и запись в appliedJobs профиля
	Apply(ctx context.Context, db *gorm.DB, applicant *models.User, req *dto.ApplyRequest) (*models.Application, error)

	GetMyApplications(db *gorm.DB, applicant *models.User) ([]*dto.MyApplicationItem, error)

	// GetJobApplicants доступен только автору вакансии
	GetJobApplicants(db *gorm.DB, requester *models.User, jobID string) (*dto.ApplicantsResult, error)

	UpdateStatus(ctx context.Context, db *gorm.DB, requester *models.User, applicationID string, req *dto.UpdateStatusRequest) (*models.Application, error)

	// DownloadResume открывает файл резюме; вызывающий обязан закрыть Content
	DownloadResume(ctx context.Context, db *gorm.DB, requester *models.User, applicationID string) (*dto.ResumeFile, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	userRepo        repositories.UserRepository
	uploadService   UploadService
	notifications   NotificationService
	validator       *validator.Validator
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	uploadService UploadService,
	notifications NotificationService,
	v *validator.Validator,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		uploadService:   uploadService,
		notifications:   notifications,
		validator:       v,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, db *gorm.DB, applicant *models.User, req *dto.ApplyRequest) (*models.Application, error) {
	if !auth.CanApply(applicant) {
		return nil, apperrors.ErrApplyForbidden
	}
	if !IsValidID(req.JobID) {
		return nil, apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindByIDWithPoster(db, req.JobID)
	if err != nil {
		return nil, handleJobError(err)
	}

	// Быстрая проверка; окончательно дубликат отсекает уникальный индекс
	applied, err := s.applicationRepo.Exists(db, job.ID, applicant.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if applied {
		return nil, apperrors.ErrAlreadyApplied
	}

	if req.Resume == nil {
		return nil, apperrors.ErrResumeRequired
	}
	resumeKey, err := s.uploadService.SaveResume(ctx, req.Resume)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		JobID:       job.ID,
		ApplicantID: applicant.ID,
		Resume:      resumeKey,
		Status:      models.ApplicationStatusApplied,
		CoverLetter: strings.TrimSpace(req.CoverLetter),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.applicationRepo.Create(tx, application); err != nil {
			return err
		}
		stub := &models.JobApplicant{
			JobID:     job.ID,
			UserID:    applicant.ID,
			Resume:    resumeKey,
			AppliedAt: application.CreatedAt,
		}
		if err := s.jobRepo.AppendApplicant(tx, stub); err != nil {
			return err
		}
		profile := &models.Profile{BaseModel: models.BaseModel{ID: applicant.ProfileID}}
		return s.profileRepo.AddAppliedJob(tx, profile, job)
	})
	if err != nil {
		s.uploadService.Remove(ctx, resumeKey)
		if errors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.DatabaseError(err)
	}

	telemetry.RecordApplication(string(application.Status))
	logger.CtxInfo(ctx, "Application submitted", "application_id", application.ID, "job_id", job.ID)

	s.notifications.ApplicationReceived(ctx, job.Poster, applicant, job)
	return application, nil
}

func (s *ApplicationServiceImpl) GetMyApplications(db *gorm.DB, applicant *models.User) ([]*dto.MyApplicationItem, error) {
	apps, err := s.applicationRepo.FindByApplicant(db, applicant.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewMyApplicationItems(apps), nil
}

func (s *ApplicationServiceImpl) GetJobApplicants(db *gorm.DB, requester *models.User, jobID string) (*dto.ApplicantsResult, error) {
	if !IsValidID(jobID) {
		return nil, apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if !auth.CanReviewApplications(requester, job) {
		return nil, apperrors.ErrNotJobOwnerView
	}

	apps, err := s.applicationRepo.FindByJob(db, job.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	total, err := s.applicationRepo.CountByJob(db, job.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.ApplicantsResult{
		Total:        total,
		Applications: dto.NewApplicantItems(apps),
	}, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, db *gorm.DB, requester *models.User, applicationID string, req *dto.UpdateStatusRequest) (*models.Application, error) {
	if !IsValidID(applicationID) {
		return nil, apperrors.ErrInvalidApplicationID
	}
	if err := s.validator.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return nil, apperrors.ErrInvalidApplicationStatus.WithDetails(verr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	application, job, err := s.loadApplicationWithJob(db, applicationID)
	if err != nil {
		return nil, err
	}
	if !auth.CanReviewApplications(requester, job) {
		return nil, apperrors.ErrStatusUpdateForbidden
	}

	if err := s.applicationRepo.UpdateStatus(db, application, req.Status); err != nil {
		return nil, handleApplicationError(err)
	}

	updated, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, handleApplicationError(err)
	}

	telemetry.RecordApplication(string(updated.Status))
	logger.CtxInfo(ctx, "Application status updated", "application_id", updated.ID, "status", updated.Status)

	applicant, err := s.userRepo.FindByID(db, updated.ApplicantID)
	if err != nil {
		logger.CtxWithError(ctx, "Failed to load applicant for notification", err, "application_id", updated.ID)
	} else {
		s.notifications.StatusChanged(ctx, applicant, job, updated.Status)
	}

	return updated, nil
}

func (s *ApplicationServiceImpl) DownloadResume(ctx context.Context, db *gorm.DB, requester *models.User, applicationID string) (*dto.ResumeFile, error) {
	if !IsValidID(applicationID) {
		return nil, apperrors.ErrInvalidApplicationID
	}

	application, job, err := s.loadApplicationWithJob(db, applicationID)
	if err != nil {
		return nil, err
	}
	if !auth.CanReviewApplications(requester, job) {
		return nil, apperrors.ErrResumeDownloadForbidden
	}

	content, size, err := s.uploadService.Open(ctx, application.Resume)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			return nil, apperrors.ErrResumeFileNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	return &dto.ResumeFile{
		Name:    path.Base(application.Resume),
		Size:    size,
		Content: content,
	}, nil
}

func (s *ApplicationServiceImpl) loadApplicationWithJob(db *gorm.DB, applicationID string) (*models.Application, *models.Job, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, nil, handleApplicationError(err)
	}
	job, err := s.jobRepo.FindByID(db, application.JobID)
	if err != nil {
		return nil, nil, handleJobError(err)
	}
	return application, job, nil
}

func handleApplicationError(err error) error {
	if errors.Is(err, repositories.ErrApplicationNotFound) {
		return apperrors.ErrApplicationNotFound
	}
	return apperrors.DatabaseError(err)
}
