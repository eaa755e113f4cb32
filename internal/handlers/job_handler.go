package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты /jobs. Статические пути объявлены до /:id.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/search", h.SearchJobs)

		employer := jobs.Group("", authMiddleware, middleware.RequireRoles(models.UserRoleEmployer))
		employer.POST("/create", h.CreateJob)
		employer.GET("/my-jobs", h.GetMyJobs)
		employer.PUT("/:id", h.UpdateJob)
		employer.DELETE("/:id", h.DeleteJob)

		jobs.GET("/:id", h.GetJob)
	}
}

// CreateJob godoc
// @Summary Создать вакансию
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.CreateJobRequest true "Вакансия"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /jobs/create [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.Bind(c, &req) {
		return
	}

	db := h.GetDB(c)
	job, err := h.jobService.CreateJob(c.Request.Context(), db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    job,
		"message": "Job created successfully",
	})
}

// ListJobs godoc
// @Summary Список вакансий с фильтрами
// @Description search, location, jobType, experienceRequired, company, skills, minSalary, page, limit, sort
// @Tags jobs
// @Produce json
// @Param search query string false "Подстрока для поиска"
// @Param skills query string false "Навыки через запятую"
// @Param minSalary query int false "Минимальная зарплата"
// @Param page query int false "Страница, с 1"
// @Param limit query int false "Размер страницы, до 100"
// @Param sort query string false "createdAt, postedDate, jobTitle, companyName, minSalary; '-' для убывания"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	res, err := h.jobService.ListJobs(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"totalJobs":  res.TotalJobs,
		"totalPages": res.TotalPages,
		"page":       res.Page,
		"jobs":       res.Jobs,
	})
}

// SearchJobs - старый поиск по названию и описанию
func (h *JobHandler) SearchJobs(c *gin.Context) {
	jobs, err := h.jobService.SearchJobs(h.GetDB(c), c.Query("query"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

// GetJob godoc
// @Summary Вакансия по ID
// @Tags jobs
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse "Invalid job ID format"
// @Failure 404 {object} apperrors.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
		"message": "Get job by id successfully",
	})
}

// UpdateJob godoc
// @Summary Обновить вакансию (только автор)
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Param job body dto.UpdateJobRequest true "Изменяемые поля"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} apperrors.ErrorResponse "Not authorized to update this job"
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.Bind(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), user, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully",
		"job":     job,
	})
}

// DeleteJob godoc
// @Summary Удалить вакансию вместе с откликами (только автор)
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 200 {object} map[string]interface{}
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), h.GetDB(c), user, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
	})
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	user, ok := h.GetAndAuthorizeUser(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetMyJobs(h.GetDB(c), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Jobs fetched successfully",
		"jobs":    jobs,
	})
}
