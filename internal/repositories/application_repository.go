package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
)

// ApplicationRepository - хранилище откликов, источник истины по количеству откликов
type ApplicationRepository interface {
	// Create создает отклик; нарушение уникального индекса (job_id, applicant_id) дает ErrAlreadyApplied
	Create(db *gorm.DB, app *models.Application) error

	FindByID(db *gorm.DB, id string) (*models.Application, error)
	Exists(db *gorm.DB, jobID, applicantID string) (bool, error)

	// FindByApplicant возвращает отклики соискателя вместе с вакансией, новые первыми
	FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)

	// FindByJob возвращает отклики на вакансию вместе с соискателем, новые первыми
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)

	CountByJob(db *gorm.DB, jobID string) (int64, error)
	UpdateStatus(db *gorm.DB, app *models.Application, status models.ApplicationStatus) error
	CountSince(db *gorm.DB, since time.Time) (int64, error)
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, app *models.Application) error {
	if app.Status == "" {
		app.Status = models.ApplicationStatusApplied
	}
	if err := db.Create(app).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, notFound(err, ErrApplicationNotFound)
	}
	return &app, nil
}

func (r *applicationRepository) Exists(db *gorm.DB, jobID, applicantID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	apps := []models.Application{}
	err := db.Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	apps := []models.Application{}
	err := db.Preload("Applicant").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) CountByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *applicationRepository) UpdateStatus(db *gorm.DB, app *models.Application, status models.ApplicationStatus) error {
	result := db.Model(app).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) CountSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("created_at >= ?", since).Count(&count).Error
	return count, err
}
