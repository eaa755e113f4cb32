package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BaseModel - общие поля для всех таблиц.
// ID генерируется на стороне приложения, чтобы не зависеть от uuid_generate_v4()
// и одинаково работать на postgres, mysql и sqlite.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate проставляет UUID, если он еще не задан
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// stringList читает JSON-массив строк; битые или пустые данные дают пустой срез
func stringList(raw datatypes.JSON) []string {
	var out []string
	if len(raw) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func toJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	// без HTML-экранирования: "R&D" хранится как есть, а не как "R\u0026D"
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(values)
	return datatypes.JSON(bytes.TrimRight(buf.Bytes(), "\n"))
}

// SkillsSeparator разделяет навыки в текстовом индексе skills_text
const SkillsSeparator = "\n"

// skillsText - навыки в нижнем регистре, каждый обрамлен разделителем:
// "\ngo\nsql\n". Так LIKE ищет и целый элемент, и подстроку без JSON-пунктуации.
func skillsText(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(v, SkillsSeparator, " ")))
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return SkillsSeparator + strings.Join(parts, SkillsSeparator) + SkillsSeparator
}
