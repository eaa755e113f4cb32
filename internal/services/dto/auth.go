package dto

import (
	"mime/multipart"
	"strings"

	"jobboard_backend/internal/models"
)

// RegisterRequest - регистрация; принимается как JSON или multipart-форма
type RegisterRequest struct {
	FirstName       string          `json:"firstName" form:"firstName"`
	LastName        string          `json:"lastName" form:"lastName"`
	Email           string          `json:"email" form:"email" validate:"omitempty,email"`
	ContactNumber   string          `json:"contactNumber" form:"contactNumber" validate:"omitempty,max=32"`
	Password        string          `json:"password" form:"password"`
	ConfirmPassword string          `json:"confirmPassword" form:"confirmPassword"`
	AccountType     models.UserRole `json:"accountType" form:"accountType"`
	Company         string          `json:"company" form:"company"`
	Education       string          `json:"education" form:"education"`
	Skills          SkillList       `json:"skills" form:"-"`
	Experience      string          `json:"experience" form:"experience"`

	ProfileImage *multipart.FileHeader `json:"-" form:"-"`
}

// MissingRequired - есть ли незаполненные обязательные поля
func (r *RegisterRequest) MissingRequired() bool {
	for _, v := range []string{r.FirstName, r.LastName, r.Email, r.ContactNumber, r.Password, r.ConfirmPassword, string(r.AccountType)} {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// LoginRequest - вход по email и паролю
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResult - токен и пользователь после успешного входа
type LoginResult struct {
	Token string
	User  *models.User
}

// UserResponse - пользователь в ответах API, без пароля
type UserResponse struct {
	*models.User
	Skills []string `json:"skills"`
}

func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{User: u, Skills: u.GetSkills()}
}

// UserRef - краткие данные пользователя для вложенных объектов
type UserRef struct {
	ID            string `json:"_id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

func NewUserRef(u *models.User, withContact bool) *UserRef {
	if u == nil {
		return nil
	}
	ref := &UserRef{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
	if withContact {
		ref.ContactNumber = u.ContactNumber
	}
	return ref
}
