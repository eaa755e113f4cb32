package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobRepository определяет операции с вакансиями
type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error

	// FindByID находит вакансию без связей
	FindByID(db *gorm.DB, id string) (*models.Job, error)

	// FindByIDWithPoster находит вакансию вместе с автором и заглушками откликов
	FindByIDWithPoster(db *gorm.DB, id string) (*models.Job, error)

	UpdateFields(db *gorm.DB, job *models.Job, fields map[string]interface{}) error

	// Delete удаляет вакансию, ее отклики и связи с профилями
	Delete(db *gorm.DB, job *models.Job) error

	// FindByPoster возвращает вакансии работодателя, новые первыми
	FindByPoster(db *gorm.DB, userID string) ([]models.Job, error)

	// Search применяет JobFilter и возвращает страницу вакансий и общее количество
	Search(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error)

	// SearchText - поиск подстроки в названии и описании
	SearchText(db *gorm.DB, query string) ([]models.Job, error)

	AppendApplicant(db *gorm.DB, stub *models.JobApplicant) error
	CountApplicants(db *gorm.DB, jobID string) (int64, error)
	CountActive(db *gorm.DB) (int64, error)
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	if job.PostedDate.IsZero() {
		job.PostedDate = time.Now().UTC()
	}
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}
	return &job, nil
}

func (r *jobRepository) FindByIDWithPoster(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.
		Preload("Poster").
		Preload("Applicants", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("applied_at DESC")
		}).
		Where("id = ?", id).
		First(&job).Error
	if err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}
	return &job, nil
}

func (r *jobRepository) UpdateFields(db *gorm.DB, job *models.Job, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	// postedBy и applicants не обновляются никогда
	delete(fields, "posted_by")
	delete(fields, "applicants")
	return db.Model(job).Omit("PostedBy", "Applicants", "Poster").Updates(fields).Error
}

func (r *jobRepository) Delete(db *gorm.DB, job *models.Job) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.JobApplicant{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM profile_applied_jobs WHERE job_id = ?", job.ID).Error; err != nil {
			return err
		}
		result := tx.Delete(job)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *jobRepository) FindByPoster(db *gorm.DB, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Applicants").
		Where("posted_by = ?", userID).
		Order(JobOrder(DefaultJobSort)).
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Search(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error) {
	filter.Normalize()

	var total int64
	if err := ApplyJobFilter(db.Model(&models.Job{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	jobs := []models.Job{}
	if total == 0 {
		return jobs, 0, nil
	}

	err := ApplyJobFilter(db.Model(&models.Job{}), filter).
		Preload("Applicants").
		Order(JobOrder(filter.Sort)).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) SearchText(db *gorm.DB, query string) ([]models.Job, error) {
	jobs := []models.Job{}
	q := db.Model(&models.Job{})
	if query != "" {
		pattern := likePattern(query)
		q = q.Where("("+likeClause("job_title")+" OR "+likeClause("job_description")+")", pattern, pattern)
	}
	err := q.Order(JobOrder(DefaultJobSort)).Limit(MaxJobLimit).Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) AppendApplicant(db *gorm.DB, stub *models.JobApplicant) error {
	if stub.AppliedAt.IsZero() {
		stub.AppliedAt = time.Now().UTC()
	}
	return db.Create(stub).Error
}

func (r *jobRepository) CountApplicants(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobApplicant{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *jobRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
