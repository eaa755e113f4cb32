package models

type Application struct {
	BaseModel
	JobID       string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_applicant" json:"jobId"`
	ApplicantID string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_applicant;index" json:"applicantId"`
	Resume      string            `gorm:"not null" json:"resume"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`
	CoverLetter string            `gorm:"type:text" json:"coverLetter,omitempty"`

	// Relations
	Job       *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"-"`
}

// All возвращает модели для AutoMigrate в порядке зависимостей
func All() []interface{} {
	return []interface{}{
		&Profile{},
		&User{},
		&Job{},
		&JobApplicant{},
		&Application{},
	}
}
