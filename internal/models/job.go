package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	JobTitle           string         `gorm:"type:varchar(255);not null" json:"jobTitle"`
	JobDescription     string         `gorm:"type:text;not null" json:"jobDescription"`
	CompanyName        string         `gorm:"type:varchar(255);not null;index" json:"companyName"`
	Location           string         `gorm:"type:varchar(255);not null" json:"location"`
	JobType            JobType        `gorm:"type:varchar(20);not null;default:'full-time'" json:"jobType"`
	SalaryRange        string         `gorm:"type:varchar(100)" json:"salaryRange,omitempty"`
	MinSalary          int64          `gorm:"default:0;index" json:"minSalary"`
	SkillRequired      datatypes.JSON `json:"skillRequired"`
	SkillsText         string         `gorm:"type:text" json:"-"`
	ExperienceRequired string         `gorm:"type:varchar(100);default:'fresher'" json:"experienceRequired"`
	PostedBy           string         `gorm:"type:varchar(36);not null;index" json:"postedBy"`
	PostedDate         time.Time      `json:"postedDate"`
	IsActive           bool           `gorm:"default:true" json:"isActive"`

	// Relations
	Poster     *User          `gorm:"foreignKey:PostedBy" json:"-"`
	Applicants []JobApplicant `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applicants"`
}

func (j *Job) GetSkills() []string {
	return stringList(j.SkillRequired)
}

func (j *Job) SetSkills(skills []string) {
	j.SkillRequired = toJSONList(skills)
	j.SkillsText = skillsText(skills)
}

// IsOwnedBy - только автор вакансии может ее менять
func (j *Job) IsOwnedBy(userID string) bool {
	return userID != "" && j.PostedBy == userID
}

// JobApplicant - денормализованная "заглушка" откликнувшегося на вакансии.
// Источник истины по откликам - таблица applications.
type JobApplicant struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	JobID     string    `gorm:"type:varchar(36);not null;index" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user"`
	Resume    string    `json:"resume,omitempty"`
	AppliedAt time.Time `json:"appliedAt"`
}
