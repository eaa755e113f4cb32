package models

type UserRole string
type JobType string
type ApplicationStatus string

const (
	UserRoleEmployer  UserRole = "employer"
	UserRoleJobSeeker UserRole = "jobSeeker"

	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// DefaultExperience - значение experienceRequired по умолчанию
const DefaultExperience = "fresher"

var (
	AllUserRoles           = []UserRole{UserRoleEmployer, UserRoleJobSeeker}
	AllJobTypes            = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote}
	AllApplicationStatuses = []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReviewed,
		ApplicationStatusInterviewed,
		ApplicationStatusHired,
		ApplicationStatusRejected,
	}
)

func (r UserRole) IsValid() bool {
	for _, v := range AllUserRoles {
		if v == r {
			return true
		}
	}
	return false
}

func (t JobType) IsValid() bool {
	for _, v := range AllJobTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsValid() bool {
	for _, v := range AllApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}
