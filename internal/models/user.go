package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	FirstName     string         `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName      string         `gorm:"type:varchar(100);not null" json:"lastName"`
	Email         string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	ContactNumber string         `gorm:"type:varchar(32)" json:"contactNumber"`
	Password      string         `gorm:"not null" json:"-"`
	AccountType   UserRole       `gorm:"type:varchar(20);not null;index" json:"accountType"`
	ProfileImage  string         `json:"profileImage"`
	Company       string         `json:"company,omitempty"`
	Education     string         `json:"education,omitempty"`
	Skills        datatypes.JSON `json:"skills"`
	Experience    string         `json:"experience,omitempty"`
	Active        bool           `gorm:"default:true" json:"active"`

	// Relations
	ProfileID string   `gorm:"type:varchar(36);uniqueIndex;not null" json:"-"`
	Profile   *Profile `gorm:"foreignKey:ProfileID" json:"additionalDetails,omitempty"`
}

func (u *User) GetSkills() []string {
	return stringList(u.Skills)
}

func (u *User) SetSkills(skills []string) {
	u.Skills = toJSONList(skills)
}

// FullName используется в письмах и аватарах
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Profile - дополнительные данные пользователя (1:1 с User)
type Profile struct {
	BaseModel
	Gender      string     `gorm:"type:varchar(20)" json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	About       string     `gorm:"type:text" json:"about,omitempty"`
	Resume      string     `json:"resume,omitempty"`

	AppliedJobs []Job `gorm:"many2many:profile_applied_jobs;constraint:OnDelete:CASCADE" json:"appliedJobs"`
}
