package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateJobRequest - создание вакансии
type CreateJobRequest struct {
	JobTitle           string         `json:"jobTitle"`
	JobDescription     string         `json:"jobDescription"`
	CompanyName        string         `json:"companyName"`
	Location           string         `json:"location"`
	JobType            models.JobType `json:"jobType" validate:"omitempty,is-job-type"`
	SalaryRange        string         `json:"salaryRange" validate:"max=100"`
	MinSalary          *int64         `json:"minSalary" validate:"omitempty,min=0"`
	SkillRequired      SkillList      `json:"skillRequired"`
	ExperienceRequired string         `json:"experienceRequired" validate:"max=100"`
}

// UpdateJobRequest - частичное обновление; nil означает "не менять"
type UpdateJobRequest struct {
	JobTitle           *string         `json:"jobTitle" validate:"omitempty,min=1,max=255"`
	JobDescription     *string         `json:"jobDescription" validate:"omitempty,min=1"`
	CompanyName        *string         `json:"companyName" validate:"omitempty,min=1,max=255"`
	Location           *string         `json:"location" validate:"omitempty,min=1,max=255"`
	JobType            *models.JobType `json:"jobType" validate:"omitempty,is-job-type"`
	SalaryRange        *string         `json:"salaryRange" validate:"omitempty,max=100"`
	MinSalary          *int64          `json:"minSalary" validate:"omitempty,min=0"`
	SkillRequired      *SkillList      `json:"skillRequired"`
	ExperienceRequired *string         `json:"experienceRequired" validate:"omitempty,max=100"`
	IsActive           *bool           `json:"isActive"`
}

// JobListQuery - параметры GET /jobs
type JobListQuery struct {
	Search             string `form:"search"`
	Location           string `form:"location"`
	JobType            string `form:"jobType"`
	ExperienceRequired string `form:"experienceRequired"`
	Company            string `form:"company"`
	Skills             string `form:"skills"`
	MinSalary          string `form:"minSalary"`
	SalaryRange        string `form:"salaryRange"`
	Page               string `form:"page"`
	Limit              string `form:"limit"`
	Sort               string `form:"sort"`
}

// JobResponse - вакансия с навыками в виде массива
type JobResponse struct {
	*models.Job
	SkillRequired []string `json:"skillRequired"`
}

func NewJobResponse(j *models.Job) *JobResponse {
	if j == nil {
		return nil
	}
	if j.Applicants == nil {
		j.Applicants = []models.JobApplicant{}
	}
	return &JobResponse{Job: j, SkillRequired: j.GetSkills()}
}

func NewJobResponses(jobs []models.Job) []*JobResponse {
	out := make([]*JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

// JobDetailResponse - вакансия с раскрытым автором
type JobDetailResponse struct {
	*JobResponse
	PostedBy *UserRef `json:"postedBy"`
}

// JobListResult - страница результатов поиска
type JobListResult struct {
	Jobs       []*JobResponse
	TotalJobs  int64
	TotalPages int
	Page       int
}

// JobSummary - краткие данные вакансии внутри отклика
type JobSummary struct {
	ID          string    `json:"_id"`
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	Location    string    `json:"location"`
	JobType     string    `json:"jobType,omitempty"`
	PostedDate  time.Time `json:"postedDate,omitempty"`
}

func NewJobSummary(j *models.Job) *JobSummary {
	if j == nil {
		return nil
	}
	return &JobSummary{
		ID:          j.ID,
		JobTitle:    j.JobTitle,
		CompanyName: j.CompanyName,
		Location:    j.Location,
		JobType:     string(j.JobType),
		PostedDate:  j.PostedDate,
	}
}
