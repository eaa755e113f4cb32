package dto

import (
	"jobboard_backend/internal/models"
)

const DateOfBirthLayout = "2006-01-02"

// UpdateProfileRequest - частичное обновление профиля и отображаемых полей пользователя.
// email и accountType не меняются.
type UpdateProfileRequest struct {
	Gender      *string `json:"gender" validate:"omitempty,max=20"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	About       *string `json:"about" validate:"omitempty,max=2000"`

	FirstName     *string    `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName      *string    `json:"lastName" validate:"omitempty,min=1,max=100"`
	ContactNumber *string    `json:"contactNumber" validate:"omitempty,max=32"`
	Company       *string    `json:"company" validate:"omitempty,max=255"`
	Education     *string    `json:"education" validate:"omitempty,max=255"`
	Skills        *SkillList `json:"skills"`
	Experience    *string    `json:"experience" validate:"omitempty,max=255"`
}

// ProfileResponse - профиль с краткими данными вакансий, на которые пользователь откликнулся
type ProfileResponse struct {
	*models.Profile
	AppliedJobs []*JobSummary `json:"appliedJobs"`
}

func NewProfileResponse(p *models.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	jobs := make([]*JobSummary, 0, len(p.AppliedJobs))
	for i := range p.AppliedJobs {
		jobs = append(jobs, NewJobSummary(&p.AppliedJobs[i]))
	}
	return &ProfileResponse{Profile: p, AppliedJobs: jobs}
}
