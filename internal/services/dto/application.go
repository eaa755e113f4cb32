package dto

import (
	"io"
	"mime/multipart"

	"jobboard_backend/internal/models"
)

const AppliedAtLayout = "2006-01-02"

// ApplyRequest - отклик на вакансию (multipart: resume, coverLetter)
type ApplyRequest struct {
	JobID       string
	Resume      *multipart.FileHeader
	CoverLetter string
}

// UpdateStatusRequest - смена статуса отклика
type UpdateStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

// MyApplicationItem - отклик соискателя с данными вакансии в jobId
type MyApplicationItem struct {
	*models.Application
	JobID *JobSummary `json:"jobId"`
}

// ApplicantItem - отклик на вакансию с данными соискателя в applicantId
type ApplicantItem struct {
	*models.Application
	ApplicantID *UserRef `json:"applicantId"`
	AppliedAt   string   `json:"appliedAt"`
}

func NewMyApplicationItems(apps []models.Application) []*MyApplicationItem {
	out := make([]*MyApplicationItem, 0, len(apps))
	for i := range apps {
		out = append(out, &MyApplicationItem{
			Application: &apps[i],
			JobID:       NewJobSummary(apps[i].Job),
		})
	}
	return out
}

func NewApplicantItems(apps []models.Application) []*ApplicantItem {
	out := make([]*ApplicantItem, 0, len(apps))
	for i := range apps {
		out = append(out, &ApplicantItem{
			Application: &apps[i],
			ApplicantID: NewUserRef(apps[i].Applicant, true),
			AppliedAt:   apps[i].CreatedAt.Format(AppliedAtLayout),
		})
	}
	return out
}

// ApplicantsResult - отклики на вакансию и их общее количество
type ApplicantsResult struct {
	Total        int64
	Applications []*ApplicantItem
}

// ResumeFile - поток файла резюме для скачивания
type ResumeFile struct {
	Name    string
	Size    int64
	Content io.ReadCloser
}
