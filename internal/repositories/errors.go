package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate возвращается при нарушении уникального индекса
	ErrDuplicate = errors.New("duplicate record")
)

// isDuplicateKey распознает нарушение уникальности. При TranslateError gorm
// отдает ErrDuplicatedKey, иначе проверяем текст ошибки драйвера.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}

// notFound подменяет gorm.ErrRecordNotFound доменной ошибкой репозитория
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
