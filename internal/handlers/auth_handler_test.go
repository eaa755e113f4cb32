package handlers_test

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/testutil"
	"jobboard_backend/internal/testutil/apitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"email":           email,
		"contactNumber":   "5550101",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"accountType":     "jobSeeker",
		"skills":          []string{"go", "sql"},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	// 1. Подготовка
	ts := apitest.NewTestServer(t)

	// 2. Действие: регистрация
	w := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody("ada@example.com"))

	// 3. Проверка
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := apitest.Decode(t, w)
	assert.Equal(t, "User registered successfully", body["message"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, []any{"go", "sql"}, user["skills"])
	assert.NotContains(t, user, "password")

	// 4. Действие: логин
	w = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "ada@example.com",
		"password": "secret123",
	})

	// 5. Проверка: токен в теле и в httpOnly cookie
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = apitest.Decode(t, w)
	assert.Equal(t, "User login success", body["message"])
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 120, cookies[0].MaxAge)
}

func TestRegister_Multipart(t *testing.T) {
	ts := apitest.NewTestServer(t)

	fields := map[string]string{
		"firstName":       "Grace",
		"lastName":        "Hopper",
		"email":           "grace@example.com",
		"contactNumber":   "5550102",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"accountType":     "employer",
		"company":         "Navy",
		"skills":          "cobol, compilers",
	}
	w := ts.SendMultipart(t, http.MethodPost, "/api/v1/auth/register", "", fields, apitest.FormFile{
		Field:    "profileImage",
		Filename: "me.png",
		Content:  testutil.PNGContent,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := apitest.Decode(t, w)["user"].(map[string]any)
	assert.Equal(t, []any{"cobol", "compilers"}, user["skills"])
	assert.Contains(t, user["profileImage"], "/uploads/profileImages/profileImage-me-")
}

func TestRegister_Errors(t *testing.T) {
	ts := apitest.NewTestServer(t)
	w := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody("dup@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	tests := []struct {
		name    string
		body    map[string]interface{}
		code    int
		message string
	}{
		{
			name:    "duplicate email",
			body:    registerBody("DUP@example.com"),
			code:    http.StatusConflict,
			message: "User already exists",
		},
		{
			name: "missing fields",
			body: map[string]interface{}{
				"email": "x@example.com",
			},
			code:    http.StatusBadRequest,
			message: "All fields are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", tt.body)

			assert.Equal(t, tt.code, w.Code)
			body := apitest.Decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := apitest.NewTestServer(t)
	_, user := ts.CreateAndLoginUser(t, "jobSeeker")

	for _, creds := range []map[string]string{
		{"email": user.Email, "password": "wrong-password"},
		{"email": "nobody@example.com", "password": testutil.DefaultPassword},
	} {
		w := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", creds)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid email or password", apitest.Decode(t, w)["message"])
		assert.Empty(t, w.Result().Cookies())
	}
}
