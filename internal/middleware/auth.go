package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DefaultTokenCookie - имя cookie, которую выставляет логин
const DefaultTokenCookie = "token"

// maxTokenBodyPeek - JSON-тело больше этого размера не читаем в поисках токена
const maxTokenBodyPeek = 1 << 20

// Authenticator проверяет токен и возвращает пользователя с профилем
type Authenticator interface {
	Authenticate(db *gorm.DB, token string) (*models.User, error)
}

// AuthMiddleware - middleware проверки JWT.
// Токен ищется в заголовке Authorization, cookie, поле token тела и ?token=.
func AuthMiddleware(authenticator Authenticator, cookieName string) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = DefaultTokenCookie
	}

	return func(c *gin.Context) {
		token, source := extractToken(c, cookieName)
		if token == "" {
			apperrors.HandleError(c, apperrors.ErrTokenMissing)
			return
		}
		if source == "query" {
			logger.CtxDebug(c.Request.Context(), "Token taken from query string", "path", c.FullPath())
		}

		db, err := GetDB(c)
		if err != nil {
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		user, err := authenticator.Authenticate(db, token)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Set(contextkeys.UserIDKey, user.ID)
		c.Set(contextkeys.RoleKey, user.AccountType)
		c.Set(contextkeys.UserKey, user)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (string, string) {
	if header := strings.TrimSpace(c.GetHeader("Authorization")); header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
			if t := strings.TrimSpace(header[7:]); t != "" {
				return t, "header"
			}
		}
	}

	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, "cookie"
	}

	if t := bodyToken(c); t != "" {
		return t, "body"
	}

	if t := strings.TrimSpace(c.Query("token")); t != "" {
		return t, "query"
	}
	return "", ""
}

// bodyToken читает поле token из JSON или формы. JSON-тело возвращается
// обратно в запрос, чтобы хендлер мог его прочитать.
func bodyToken(c *gin.Context) string {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return ""
	}

	switch c.ContentType() {
	case gin.MIMEJSON:
		if c.Request.ContentLength > maxTokenBodyPeek {
			return ""
		}
		// длина может быть неизвестна (chunked): непрочитанный хвост отдаем хендлеру
		original := c.Request.Body
		data, err := io.ReadAll(io.LimitReader(original, maxTokenBodyPeek))
		c.Request.Body = replayBody{
			Reader: io.MultiReader(bytes.NewReader(data), original),
			Closer: original,
		}
		if err != nil || len(data) == 0 {
			return ""
		}
		var payload struct {
			Token string `json:"token"`
		}
		if json.Unmarshal(data, &payload) != nil {
			return ""
		}
		return strings.TrimSpace(payload.Token)
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return strings.TrimSpace(c.PostForm("token"))
	}
	return ""
}

type replayBody struct {
	io.Reader
	io.Closer
}

// RequireRoles - middleware для проверки нескольких возможных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		roleSet[r] = true
		names = append(names, string(r))
	}
	denied := apperrors.NewForbiddenError(fmt.Sprintf("Access denied. Only %s allowed.", strings.Join(names, " or ")))

	return func(c *gin.Context) {
		roleVal, exists := c.Get(contextkeys.RoleKey)
		if !exists {
			apperrors.HandleError(c, denied)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok || !roleSet[role] {
			apperrors.HandleError(c, denied)
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(contextkeys.UserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetCurrentUser - пользователь, которого положил AuthMiddleware
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(contextkeys.UserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok && user != nil
}

var errNoDB = errors.New("database is not attached to request context")

// GetDB - *gorm.DB, которую положил DBMiddleware, привязанная к контексту запроса
func GetDB(c *gin.Context) (*gorm.DB, error) {
	val, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		return nil, errNoDB
	}
	db, ok := val.(*gorm.DB)
	if !ok || db == nil {
		return nil, errNoDB
	}
	return db.WithContext(c.Request.Context()), nil
}
