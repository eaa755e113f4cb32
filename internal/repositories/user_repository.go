package repositories

import (
	"errors"
	"strings"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository определяет операции с пользователями
type UserRepository interface {
	// Create создает пользователя; дубликат email дает ErrUserAlreadyExists
	Create(db *gorm.DB, user *models.User) error

	// FindByID находит пользователя вместе с профилем
	FindByID(db *gorm.DB, id string) (*models.User, error)

	// FindByEmail ищет пользователя по email без учета регистра
	FindByEmail(db *gorm.DB, email string) (*models.User, error)

	ExistsByEmail(db *gorm.DB, email string) (bool, error)

	// UpdateFields частично обновляет пользователя
	UpdateFields(db *gorm.DB, user *models.User, fields map[string]interface{}) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	if err := db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.Preload("Profile").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Preload("Profile").Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateFields(db *gorm.DB, user *models.User, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := db.Model(user).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
