package repositories

import (
	"math"
	"strings"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

const (
	DefaultJobLimit = 10
	MaxJobLimit     = 100
	DefaultJobSort  = "-createdAt"
)

// JobFilter - параметры поиска вакансий. Пустые поля не участвуют в запросе.
type JobFilter struct {
	Search     string
	Location   string
	JobType    string
	Experience string
	Company    string
	Skills     []string
	MinSalary  *int64
	Page       int
	Limit      int
	Sort       string
}

// Normalize приводит пагинацию и сортировку к допустимым значениям
func (f *JobFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultJobLimit
	}
	if f.Limit > MaxJobLimit {
		f.Limit = MaxJobLimit
	}
	if _, ok := sortColumn(f.Sort); !ok {
		f.Sort = DefaultJobSort
	}
}

func (f JobFilter) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// TotalPages = ceil(total/limit)
func TotalPages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

var jobSortColumns = map[string]string{
	"createdAt":   "created_at",
	"postedDate":  "posted_date",
	"jobTitle":    "job_title",
	"companyName": "company_name",
	"minSalary":   "min_salary",
}

func sortColumn(sort string) (string, bool) {
	col, ok := jobSortColumns[strings.TrimPrefix(sort, "-")]
	return col, ok
}

// JobOrder переводит ключ сортировки в ORDER BY; неизвестный ключ дает -createdAt
func JobOrder(sort string) string {
	col, ok := sortColumn(sort)
	if !ok {
		sort = DefaultJobSort
		col, _ = sortColumn(sort)
	}
	dir := "ASC"
	if strings.HasPrefix(sort, "-") {
		dir = "DESC"
	}
	if col == "created_at" {
		return col + " " + dir + ", id " + dir
	}
	return col + " " + dir + ", created_at DESC"
}

var searchColumns = []string{
	"job_title",
	"job_description",
	"company_name",
	"location",
	"job_type",
	"experience_required",
}

// ApplyJobFilter добавляет к запросу условия WHERE. Пагинация и сортировка
// остаются за вызывающим кодом, чтобы тот же запрос годился для Count.
func ApplyJobFilter(db *gorm.DB, f JobFilter) *gorm.DB {
	if s := strings.TrimSpace(strings.ReplaceAll(f.Search, models.SkillsSeparator, " ")); s != "" {
		pattern := likePattern(s)
		clauses := make([]string, 0, len(searchColumns)+1)
		args := make([]interface{}, 0, len(searchColumns)+1)
		for _, col := range searchColumns {
			clauses = append(clauses, likeClause(col))
			args = append(args, pattern)
		}
		clauses = append(clauses, likeClause("skills_text"))
		args = append(args, pattern)
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	for _, field := range []struct{ col, value string }{
		{"location", f.Location},
		{"job_type", f.JobType},
		{"experience_required", f.Experience},
		{"company_name", f.Company},
	} {
		if v := strings.TrimSpace(field.value); v != "" {
			db = db.Where(likeClause(field.col), likePattern(v))
		}
	}

	if skills := cleanSkills(f.Skills); len(skills) > 0 {
		clauses := make([]string, 0, len(skills))
		args := make([]interface{}, 0, len(skills))
		sep := models.SkillsSeparator
		for _, skill := range skills {
			clauses = append(clauses, likeClause("skills_text"))
			// целый элемент: навык обрамлен разделителями
			args = append(args, "%"+sep+escapeLike(strings.ToLower(skill))+sep+"%")
		}
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	if f.MinSalary != nil {
		db = db.Where("min_salary >= ?", *f.MinSalary)
	}

	return db
}

func likeClause(expr string) string {
	return "LOWER(" + expr + ") LIKE ? ESCAPE '!'"
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func likePattern(s string) string {
	return "%" + escapeLike(strings.ToLower(s)) + "%"
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
