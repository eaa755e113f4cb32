package dto

import (
	"encoding/json"
	"strings"
)

// SkillList принимает навыки как JSON-массив или как строку через запятую
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = ParseSkills(strings.Join(list, ","))
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseSkills(raw)
	return nil
}

// ParseSkills разбивает строку по запятым, убирает пробелы и пустые элементы
func ParseSkills(raw string) SkillList {
	out := SkillList{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
