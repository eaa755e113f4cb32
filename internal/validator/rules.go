package validator

import (
	"log"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации.
// Ошибка регистрации - ошибка конфигурации, приложение не стартует.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': employer или jobSeeker
	mustRegister("is-user-role", validateUserRole)

	// 'is-job-type': full-time, part-time, contract, internship, remote
	mustRegister("is-job-type", validateJobType)

	// 'is-application-status': статусы отклика
	mustRegister("is-application-status", validateApplicationStatus)
}

// Пустые значения не проверяем, для этого есть 'required'

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserRole(value).IsValid()
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.JobType(value).IsValid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ApplicationStatus(value).IsValid()
}

func userRoleValues() []string {
	out := make([]string, 0, len(models.AllUserRoles))
	for _, r := range models.AllUserRoles {
		out = append(out, string(r))
	}
	return out
}

func jobTypeValues() []string {
	out := make([]string, 0, len(models.AllJobTypes))
	for _, t := range models.AllJobTypes {
		out = append(out, string(t))
	}
	return out
}

func applicationStatusValues() []string {
	out := make([]string, 0, len(models.AllApplicationStatuses))
	for _, s := range models.AllApplicationStatuses {
		out = append(out, string(s))
	}
	return out
}
