package services

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/telemetry"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(ctx context.Context, db *gorm.DB, employer *models.User, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	ListJobs(db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResult, error)
	SearchJobs(db *gorm.DB, query string) ([]*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID string) (*dto.JobDetailResponse, error)
	UpdateJob(ctx context.Context, db *gorm.DB, requester *models.User, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, db *gorm.DB, requester *models.User, jobID string) error
	GetMyJobs(db *gorm.DB, employer *models.User) ([]*dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo   repositories.JobRepository
	validator *validator.Validator
}

func NewJobService(jobRepo repositories.JobRepository, v *validator.Validator) JobService {
	return &JobServiceImpl{
		jobRepo:   jobRepo,
		validator: v,
	}
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, db *gorm.DB, employer *models.User, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !auth.CanCreateJobs(employer) {
		return nil, apperrors.ErrJobCreateForbidden
	}
	for _, v := range []string{req.JobTitle, req.JobDescription, req.CompanyName, req.Location} {
		if strings.TrimSpace(v) == "" {
			return nil, apperrors.ErrMissingJobFields
		}
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationError(err)
	}

	job := &models.Job{
		JobTitle:           strings.TrimSpace(req.JobTitle),
		JobDescription:     req.JobDescription,
		CompanyName:        strings.TrimSpace(req.CompanyName),
		Location:           strings.TrimSpace(req.Location),
		JobType:            req.JobType,
		SalaryRange:        req.SalaryRange,
		ExperienceRequired: req.ExperienceRequired,
		PostedBy:           employer.ID,
		PostedDate:         time.Now().UTC(),
		IsActive:           true,
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}
	if job.ExperienceRequired == "" {
		job.ExperienceRequired = models.DefaultExperience
	}
	if req.MinSalary != nil {
		job.MinSalary = *req.MinSalary
	} else {
		job.MinSalary = ParseMinSalary(req.SalaryRange)
	}
	job.SetSkills(req.SkillRequired)

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	telemetry.RecordJob("created")
	logger.CtxInfo(ctx, "Job created", "job_id", job.ID, "posted_by", employer.ID)
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResult, error) {
	filter, err := BuildJobFilter(query)
	if err != nil {
		return nil, err
	}

	jobs, total, err := s.jobRepo.Search(db, filter)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	filter.Normalize()
	return &dto.JobListResult{
		Jobs:       dto.NewJobResponses(jobs),
		TotalJobs:  total,
		TotalPages: repositories.TotalPages(total, filter.Limit),
		Page:       filter.Page,
	}, nil
}

func (s *JobServiceImpl) SearchJobs(db *gorm.DB, query string) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.SearchText(db, strings.TrimSpace(query))
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewJobResponses(jobs), nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string) (*dto.JobDetailResponse, error) {
	if !IsValidID(jobID) {
		return nil, apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindByIDWithPoster(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}

	return &dto.JobDetailResponse{
		JobResponse: dto.NewJobResponse(job),
		PostedBy:    dto.NewUserRef(job.Poster, false),
	}, nil
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, db *gorm.DB, requester *models.User, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if !IsValidID(jobID) {
		return nil, apperrors.ErrInvalidJobID
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationError(err)
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if !auth.CanManageJob(requester, job) {
		return nil, apperrors.ErrNotJobOwnerUpdate
	}

	fields := jobUpdateFields(req)
	if err := s.jobRepo.UpdateFields(db, job, fields); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	updated, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}

	telemetry.RecordJob("updated")
	logger.CtxInfo(ctx, "Job updated", "job_id", jobID, "fields", len(fields))
	return dto.NewJobResponse(updated), nil
}

func (s *JobServiceImpl) DeleteJob(ctx context.Context, db *gorm.DB, requester *models.User, jobID string) error {
	if !IsValidID(jobID) {
		return apperrors.ErrInvalidJobID
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return handleJobError(err)
	}
	if !auth.CanManageJob(requester, job) {
		return apperrors.ErrNotJobOwnerDelete
	}

	if err := s.jobRepo.Delete(db, job); err != nil {
		return handleJobError(err)
	}

	telemetry.RecordJob("deleted")
	logger.CtxInfo(ctx, "Job deleted", "job_id", jobID)
	return nil
}

func (s *JobServiceImpl) GetMyJobs(db *gorm.DB, employer *models.User) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByPoster(db, employer.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewJobResponses(jobs), nil
}

// BuildJobFilter переводит параметры запроса в JobFilter.
// Нечисловой minSalary (или его алиас salaryRange) дает 400.
func BuildJobFilter(q *dto.JobListQuery) (repositories.JobFilter, error) {
	filter := repositories.JobFilter{
		Search:     q.Search,
		Location:   q.Location,
		JobType:    q.JobType,
		Experience: q.ExperienceRequired,
		Company:    q.Company,
		Skills:     dto.ParseSkills(q.Skills),
		Page:       atoiOrZero(q.Page),
		Limit:      atoiOrZero(q.Limit),
		Sort:       q.Sort,
	}

	raw := strings.TrimSpace(q.MinSalary)
	if raw == "" {
		raw = strings.TrimSpace(q.SalaryRange)
	}
	if raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return filter, apperrors.NewBadRequestError("minSalary must be a non-negative number")
		}
		filter.MinSalary = &v
	}

	return filter, nil
}

var firstNumber = regexp.MustCompile(`\d[\d,]*`)

// ParseMinSalary берет первое число из строки вида "50,000 - 70,000"
func ParseMinSalary(salaryRange string) int64 {
	match := firstNumber.FindString(salaryRange)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseInt(strings.ReplaceAll(match, ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsValidID проверяет формат идентификатора (UUID)
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func jobUpdateFields(req *dto.UpdateJobRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.JobTitle != nil {
		fields["job_title"] = strings.TrimSpace(*req.JobTitle)
	}
	if req.JobDescription != nil {
		fields["job_description"] = *req.JobDescription
	}
	if req.CompanyName != nil {
		fields["company_name"] = strings.TrimSpace(*req.CompanyName)
	}
	if req.Location != nil {
		fields["location"] = strings.TrimSpace(*req.Location)
	}
	if req.JobType != nil {
		fields["job_type"] = *req.JobType
	}
	if req.SalaryRange != nil {
		fields["salary_range"] = *req.SalaryRange
		if req.MinSalary == nil {
			fields["min_salary"] = ParseMinSalary(*req.SalaryRange)
		}
	}
	if req.MinSalary != nil {
		fields["min_salary"] = *req.MinSalary
	}
	if req.SkillRequired != nil {
		job := models.Job{}
		job.SetSkills(*req.SkillRequired)
		fields["skill_required"] = job.SkillRequired
		fields["skills_text"] = job.SkillsText
	}
	if req.ExperienceRequired != nil {
		fields["experience_required"] = *req.ExperienceRequired
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	return fields
}

func handleJobError(err error) error {
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrJobNotFound
	}
	return apperrors.DatabaseError(err)
}
