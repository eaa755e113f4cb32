// Package apitest поднимает полный роутер приложения поверх in-memory БД
// и локального хранилища во временном каталоге.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestServer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	Services *services.ServiceContainer
	Mail     *email.LogProvider
	Config   *config.Config
}

// TestConfig - конфиг для тестов: sqlite, короткий TTL токена, файлы в t.TempDir()
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.AllowedOrigins = []string{"http://localhost:5173"}
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "file::memory:"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLSeconds = 120
	cfg.JWT.CookieName = "token"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 5 * 1024 * 1024
	cfg.Upload.ResumeTypes = []string{"application/pdf"}
	cfg.Upload.ProfileImageTypes = []string{"image/jpeg", "image/png"}
	cfg.Telemetry.MetricsEnabled = true
	cfg.Telemetry.ServiceName = "jobboard-test"
	return cfg
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := TestConfig(t)
	db := testutil.NewTestDB(t)

	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	require.NoError(t, err)

	mail := email.NewLogProvider(email.NewTemplateManager())

	router, container, err := app.SetupRouter(cfg, db, store, mail, false)
	require.NoError(t, err)
	t.Cleanup(container.NotificationService.Wait)

	return &TestServer{
		Router:   router,
		DB:       db,
		Services: container,
		Mail:     mail,
		Config:   cfg,
	}
}

// Do выполняет готовый запрос через роутер
func (ts *TestServer) Do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// NewRequest - запрос без тела, чтобы тест мог сам выставить cookie или заголовки
func (ts *TestServer) NewRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

// SendRequest отправляет JSON-запрос; пустой token - без заголовка Authorization
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.Do(req)
}

// FormFile - файл для multipart-запроса
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

// SendMultipart отправляет multipart/form-data с полями и файлами
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files ...FormFile) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.Do(req)
}

// CreateAndLoginUser создает пользователя напрямую в БД и логинится через API
func (ts *TestServer) CreateAndLoginUser(t *testing.T, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := testutil.CreateUser(t, ts.DB, role)
	w := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": testutil.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token, user
}

// Decode разбирает JSON-ответ в map
func Decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}
