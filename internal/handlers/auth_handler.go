package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CookieConfig - параметры cookie с токеном, которую ставит логин
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookie CookieConfig) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "token"
	}
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookie:      cookie,
	}
}

// RegisterRoutes регистрирует маршруты /auth
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Принимает JSON или multipart-форму (с необязательным файлом profileImage)
// @Tags auth
// @Accept json,mpfd
// @Produce json
// @Param request body dto.RegisterRequest true "Данные пользователя"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "User already exists"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.Bind(c, &req) {
		return
	}

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		req.Skills = formSkills(c.PostFormArray("skills"))
		file, err := c.FormFile("profileImage")
		switch {
		case err == nil:
			req.ProfileImage = file
		case !errors.Is(err, http.ErrMissingFile):
			logger.CtxWithError(c.Request.Context(), "Failed to read profile image", err)
		}
	}

	db := h.GetDB(c)

	user, err := h.authService.Register(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    dto.NewUserResponse(user),
	})
}

// Login godoc
// @Summary Вход по email и паролю
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Email и пароль"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} apperrors.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.Bind(c, &req) {
		return
	}

	db := h.GetDB(c)

	res, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, res.Token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)

	logger.CtxInfo(c.Request.Context(), "User logged in", "user_id", res.User.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User login success",
		"token":   res.Token,
		"user":    dto.NewUserResponse(res.User),
	})
}

// formSkills принимает и повторяющееся поле skills, и одну строку через запятую
func formSkills(values []string) dto.SkillList {
	return dto.ParseSkills(strings.Join(values, ","))
}
