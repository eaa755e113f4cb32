package apperrors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке: {success:false, message}
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	// Debug добавляет текст исходной ошибки в поле error
	Debug bool
}

var defaultHandler = &GinErrorHandler{Debug: true}

// SetDebug переключает вывод исходных ошибок (выключается в production)
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

// NewErrorResponse собирает тело ответа для AppError
func (h *GinErrorHandler) NewErrorResponse(appErr *AppError) ErrorResponse {
	resp := ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	}
	// Для 5xx и ошибок проверки токена отдаем исходный текст
	if appErr.Err != nil && (h.Debug || appErr.Code == CodeInvalidToken) {
		resp.Error = appErr.Err.Error()
	}
	return resp
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "server error", "error", err.Error(), "path", c.Request.URL.Path)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, h.NewErrorResponse(appErr))
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}
