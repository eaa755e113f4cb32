package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository - дополнительные данные пользователя и список вакансий, на которые он откликнулся
type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	UpdateFields(db *gorm.DB, profile *models.Profile, fields map[string]interface{}) error

	// AddAppliedJob добавляет вакансию в appliedJobs; повторное добавление не создает дубликат
	AddAppliedJob(db *gorm.DB, profile *models.Profile, job *models.Job) error

	CountAppliedJobs(db *gorm.DB, profile *models.Profile) (int64, error)
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("AppliedJobs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("jobs.created_at DESC")
	}).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, notFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *profileRepository) UpdateFields(db *gorm.DB, profile *models.Profile, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.Model(profile).Updates(fields).Error
}

func (r *profileRepository) AddAppliedJob(db *gorm.DB, profile *models.Profile, job *models.Job) error {
	// Append для many2many вставляет строку связи с ON CONFLICT DO NOTHING.
	// Передаем только ключ, чтобы gorm не пересохранял саму вакансию и ее связи.
	ref := &models.Job{BaseModel: models.BaseModel{ID: job.ID, CreatedAt: job.CreatedAt, UpdatedAt: job.UpdatedAt}}
	return db.Model(&models.Profile{BaseModel: profile.BaseModel}).Association("AppliedJobs").Append(ref)
}

func (r *profileRepository) CountAppliedJobs(db *gorm.DB, profile *models.Profile) (int64, error) {
	assoc := db.Model(&models.Profile{BaseModel: profile.BaseModel}).Association("AppliedJobs")
	count := assoc.Count()
	return count, assoc.Error
}
