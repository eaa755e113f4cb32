package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// RegisterRoutes регистрирует маршруты /applications; все требуют токен
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	applications := rg.Group("/applications", authMiddleware)
	{
		seeker := applications.Group("", middleware.RequireRoles(models.UserRoleJobSeeker))
		seeker.POST("/apply/:id", h.Apply)
		seeker.GET("/my-applications", h.GetMyApplications)

		employer := applications.Group("", middleware.RequireRoles(models.UserRoleEmployer))
		employer.GET("/job/:jobId/applicants", h.GetJobApplicants)
		employer.PUT("/:applicationId/status", h.UpdateStatus)

		// владельца проверяет сервис, роль здесь не ограничиваем
		applications.GET("/download/:applicationId", h.DownloadResume)
	}
}

// Apply godoc
// @Summary Откликнуться на вакансию
// @Tags applications
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Param resume formData file true "Резюме (PDF, до 5 МБ)"
// @Param coverLetter formData string false "Сопроводительное письмо"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse "Resume is required"
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Failure 409 {object} apperrors.ErrorResponse "Already applied to this job"
// @Router /applications/apply/{id} [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	req := dto.ApplyRequest{
		JobID:       c.Param("id"),
		CoverLetter: c.PostForm("coverLetter"),
	}
	file, err := c.FormFile("resume")
	switch {
	case err == nil:
		req.Resume = file
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// отсутствие файла проверяет сервис после проверки вакансии
	default:
		logger.CtxWithError(c.Request.Context(), "Failed to read resume from form", err)
	}

	application, err := h.applicationService.Apply(c.Request.Context(), h.GetDB(c), user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted successfully",
		"application": application,
	})
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	items, err := h.applicationService.GetMyApplications(h.GetDB(c), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": items,
	})
}

// GetJobApplicants godoc
// @Summary Отклики на вакансию (только автор)
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} map[string]interface{} "applicant - общее число откликов"
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /applications/job/{jobId}/applicants [get]
func (h *ApplicationHandler) GetJobApplicants(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	res, err := h.applicationService.GetJobApplicants(h.GetDB(c), user, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applicant":    res.Total,
		"applications": res.Applications,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if !h.Bind(c, &req) {
		return
	}

	updated, err := h.applicationService.UpdateStatus(c.Request.Context(), h.GetDB(c), user, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"updated": updated,
	})
}

// DownloadResume godoc
// @Summary Скачать резюме отклика
// @Description Токен можно передать в ?token=, чтобы открыть файл обычной ссылкой
// @Tags applications
// @Produce application/pdf
// @Security BearerAuth
// @Param applicationId path string true "ID отклика"
// @Success 200 {file} file
// @Failure 403 {object} apperrors.ErrorResponse "Unauthorized to download this resume"
// @Failure 404 {object} apperrors.ErrorResponse "Resume file not found"
// @Router /applications/download/{applicationId} [get]
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	file, err := h.applicationService.DownloadResume(c.Request.Context(), h.GetDB(c), user, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer file.Content.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Header("Content-Length", strconv.FormatInt(file.Size, 10))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, file.Content); err != nil {
		// заголовки уже отправлены, остается только записать в лог
		logger.CtxWithError(c.Request.Context(), "Failed to stream resume", err, "file", file.Name)
	}
}
