package auth

import "jobboard_backend/internal/models"

// Разрешения, завязанные на роль аккаунта
const (
	PermJobsCreate         = "jobs:create"
	PermJobsManageOwn      = "jobs:manage:own"
	PermApplicationsApply  = "applications:apply"
	PermApplicationsReview = "applications:review:own"
	PermProfileSelf        = "profile:write:self"
)

// Permissions список разрешений по ролям
var Permissions = map[models.UserRole][]string{
	models.UserRoleEmployer: {
		PermJobsCreate,
		PermJobsManageOwn,
		PermApplicationsReview,
		PermProfileSelf,
	},
	models.UserRoleJobSeeker: {
		PermApplicationsApply,
		PermProfileSelf,
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CanReviewApplications - работодатель, разместивший вакансию.
// Используется для списка откликов, смены статуса и скачивания резюме.
func CanReviewApplications(user *models.User, job *models.Job) bool {
	if user == nil || job == nil {
		return false
	}
	return HasPermission(user.AccountType, PermApplicationsReview) && job.IsOwnedBy(user.ID)
}

// CanCreateJobs - размещать вакансии может только работодатель
func CanCreateJobs(user *models.User) bool {
	return user != nil && HasPermission(user.AccountType, PermJobsCreate)
}

// CanManageJob - менять и удалять вакансию может только ее автор-работодатель
func CanManageJob(user *models.User, job *models.Job) bool {
	if user == nil || job == nil {
		return false
	}
	return HasPermission(user.AccountType, PermJobsManageOwn) && job.IsOwnedBy(user.ID)
}

// CanApply - откликаться может только соискатель
func CanApply(user *models.User) bool {
	return user != nil && HasPermission(user.AccountType, PermApplicationsApply)
}

func CanEditProfile(user *models.User) bool {
	return user != nil && HasPermission(user.AccountType, PermProfileSelf)
}
