package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubAuthenticator принимает токены из карты token -> user
type stubAuthenticator struct {
	users map[string]*models.User
	seen  []string
}

func (s *stubAuthenticator) Authenticate(_ *gorm.DB, token string) (*models.User, error) {
	s.seen = append(s.seen, token)
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, apperrors.ErrInvalidToken.WithError(assert.AnError)
}

func newAuthRouter(t *testing.T, a Authenticator, roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(DBMiddleware(testutil.NewTestDB(t)))
	chain := []gin.HandlerFunc{AuthMiddleware(a, "")}
	if len(roles) > 0 {
		chain = append(chain, RequireRoles(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		user, _ := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c), "email": user.Email, "body": string(body)})
	})
	r.Any("/protected", chain...)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testUsers() map[string]*models.User {
	seeker := &models.User{FirstName: "S", Email: "s@example.com", AccountType: models.UserRoleJobSeeker}
	seeker.ID = "seeker-id"
	employer := &models.User{FirstName: "E", Email: "e@example.com", AccountType: models.UserRoleEmployer}
	employer.ID = "employer-id"
	return map[string]*models.User{"seeker-token": seeker, "employer-token": employer}
}

func TestAuthMiddleware_TokenMissing(t *testing.T) {
	r := newAuthRouter(t, &stubAuthenticator{users: testUsers()})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized: Token missing", body["message"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := newAuthRouter(t, &stubAuthenticator{users: testUsers()})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Unauthorized: Invalid token", body["message"])
	assert.NotEmpty(t, body["error"])
}

func TestAuthMiddleware_Precedence(t *testing.T) {
	tests := []struct {
		name  string
		build func() *http.Request
		want  string
	}{
		{
			name: "header wins over cookie",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/protected?token=seeker-token", nil)
				req.Header.Set("Authorization", "Bearer employer-token")
				req.AddCookie(&http.Cookie{Name: "token", Value: "seeker-token"})
				return req
			},
			want: "employer-id",
		},
		{
			name: "cookie wins over query",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/protected?token=employer-token", nil)
				req.AddCookie(&http.Cookie{Name: "token", Value: "seeker-token"})
				return req
			},
			want: "seeker-id",
		},
		{
			name: "json body",
			build: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/protected?token=employer-token", strings.NewReader(`{"token":"seeker-token","x":1}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			want: "seeker-id",
		},
		{
			name: "form body",
			build: func() *http.Request {
				form := url.Values{"token": {"employer-token"}}
				req := httptest.NewRequest(http.MethodPost, "/protected", strings.NewReader(form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			want: "employer-id",
		},
		{
			name: "query string",
			build: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/protected?token=seeker-token", nil)
			},
			want: "seeker-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(t, &stubAuthenticator{users: testUsers()})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.build())

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, decode(t, w)["userID"])
		})
	}
}

func TestAuthMiddleware_RestoresJSONBody(t *testing.T) {
	r := newAuthRouter(t, &stubAuthenticator{users: testUsers()})

	payload := `{"token":"seeker-token","status":"hired"}`
	req := httptest.NewRequest(http.MethodPut, "/protected", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, decode(t, w)["body"])
}

func TestAuthMiddleware_ChunkedJSONBodyKeptWhole(t *testing.T) {
	// 1. Подготовка
	r := newAuthRouter(t, &stubAuthenticator{users: testUsers()})
	large := `{"padding":"` + strings.Repeat("a", maxTokenBodyPeek+512) + `"}`
	small := `{"token":"employer-token"}`

	tests := []struct {
		name    string
		target  string
		payload string
		want    string
	}{
		{name: "larger than peek limit", target: "/protected?token=seeker-token", payload: large, want: "seeker-id"},
		{name: "token in small chunked body", target: "/protected", payload: small, want: "employer-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			req.ContentLength = -1
			req.TransferEncoding = []string{"chunked"}
			w := httptest.NewRecorder()

			// 2. Действие
			r.ServeHTTP(w, req)

			// 3. Проверка
			require.Equal(t, http.StatusOK, w.Code)
			out := decode(t, w)
			assert.Equal(t, tt.want, out["userID"])
			body, _ := out["body"].(string)
			assert.Len(t, body, len(tt.payload))
			assert.True(t, body == tt.payload, "handler must receive the whole body")
		})
	}
}

func TestRequireRoles(t *testing.T) {
	r := newAuthRouter(t, &stubAuthenticator{users: testUsers()}, models.UserRoleEmployer)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer seeker-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied. Only employer allowed.", decode(t, w)["message"])

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer employer-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRoles(models.UserRoleEmployer, models.UserRoleJobSeeker), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied. Only employer or jobSeeker allowed.", decode(t, w)["message"])
}

func TestGetDB_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetDB(c)
	assert.Error(t, err)

	c.Set(string(contextkeys.DBContextKey), testutil.NewTestDB(t))
	db, err := GetDB(c)
	require.NoError(t, err)
	assert.NotNil(t, db)
}
