package handlers_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/internal/testutil/apitest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobBody() map[string]interface{} {
	return map[string]interface{}{
		"jobTitle":       "Go Developer",
		"jobDescription": "Write services",
		"companyName":    "Acme",
		"location":       "Berlin",
		"jobType":        "remote",
		"salaryRange":    "60,000 - 80,000",
		"skillRequired":  []string{"go", "postgres"},
	}
}

func TestJobs_CreateRequiresEmployer(t *testing.T) {
	// 1. Подготовка
	ts := apitest.NewTestServer(t)
	seekerToken, _ := ts.CreateAndLoginUser(t, models.UserRoleJobSeeker)

	// 2. Действие: без токена и с токеном соискателя
	noToken := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/create", "", jobBody())
	asSeeker := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/create", seekerToken, jobBody())

	// 3. Проверка
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)
	assert.Equal(t, "Unauthorized: Token missing", apitest.Decode(t, noToken)["message"])

	assert.Equal(t, http.StatusForbidden, asSeeker.Code)
	assert.Equal(t, "Access denied. Only employer allowed.", apitest.Decode(t, asSeeker)["message"])
}

func TestJobs_CRUD(t *testing.T) {
	ts := apitest.NewTestServer(t)
	token, employer := ts.CreateAndLoginUser(t, models.UserRoleEmployer)
	otherToken, _ := ts.CreateAndLoginUser(t, models.UserRoleEmployer)

	// создание
	w := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/create", token, jobBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := apitest.Decode(t, w)["data"].(map[string]any)
	jobID := created["_id"].(string)
	assert.Equal(t, employer.ID, created["postedBy"])
	assert.EqualValues(t, 60000, created["minSalary"])

	// публичное чтение: автор без контактов
	w = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	job := apitest.Decode(t, w)["job"].(map[string]any)
	postedBy := job["postedBy"].(map[string]any)
	assert.Equal(t, employer.Email, postedBy["email"])
	assert.NotContains(t, postedBy, "contactNumber")

	// чужой работодатель не может менять и удалять
	w = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+jobID, otherToken, map[string]any{"location": "Paris"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized to update this job", apitest.Decode(t, w)["message"])

	w = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+jobID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// автор обновляет
	w = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+jobID, token, map[string]any{"location": "Paris"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Paris", apitest.Decode(t, w)["job"].(map[string]any)["location"])

	// мои вакансии
	w = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/my-jobs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, apitest.Decode(t, w)["jobs"], 1)

	// удаление
	w = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+jobID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Job deleted successfully", apitest.Decode(t, w)["message"])

	w = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+jobID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobs_GetErrors(t *testing.T) {
	ts := apitest.NewTestServer(t)

	tests := []struct {
		name    string
		id      string
		code    int
		message string
	}{
		{"malformed id", "not-an-id", http.StatusBadRequest, "Invalid job ID format"},
		{"unknown id", uuid.NewString(), http.StatusNotFound, "Job not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+tt.id, "", nil)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.message, apitest.Decode(t, w)["message"])
		})
	}
}

func TestJobs_List(t *testing.T) {
	// 1. Подготовка: три вакансии, одна с другим городом
	ts := apitest.NewTestServer(t)
	employer := testutil.CreateUser(t, ts.DB, models.UserRoleEmployer)
	testutil.CreateJob(t, ts.DB, employer)
	testutil.CreateJob(t, ts.DB, employer)
	testutil.CreateJob(t, ts.DB, employer, func(j *models.Job) {
		j.Location = "Almaty"
		j.JobTitle = "Data Engineer"
	})

	// 2. Действие
	all := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?limit=2", "", nil)
	filtered := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?location=almaty", "", nil)
	bad := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?minSalary=abc", "", nil)

	// 3. Проверка
	require.Equal(t, http.StatusOK, all.Code, all.Body.String())
	body := apitest.Decode(t, all)
	assert.EqualValues(t, 3, body["totalJobs"])
	assert.EqualValues(t, 2, body["totalPages"])
	assert.EqualValues(t, 1, body["page"])
	assert.Len(t, body["jobs"], 2)

	require.Equal(t, http.StatusOK, filtered.Code)
	jobs := apitest.Decode(t, filtered)["jobs"].([]any)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Engineer", jobs[0].(map[string]any)["jobTitle"])

	assert.Equal(t, http.StatusBadRequest, bad.Code)
}
