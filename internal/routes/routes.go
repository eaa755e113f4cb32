package routes

import (
	"net/http"

	"jobboard_backend/docs"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options - служебные маршруты, которые включаются конфигом
type Options struct {
	// UploadsURL и UploadsDir раздают локальное хранилище как статику; пустые - не раздавать
	UploadsURL string
	UploadsDir string

	Metrics bool
	Swagger bool
}

// RegisterRoutes регистрирует HTTP API v1 и служебные маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authMiddleware gin.HandlerFunc,
	opts Options,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api, authMiddleware)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMiddleware)
		appHandlers.ProfileHandler.RegisterRoutes(api, authMiddleware)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if opts.Metrics {
		ginRouter.GET("/metrics", gin.WrapH(telemetry.Handler()))
	}

	if opts.Swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))
		logger.Info("Swagger UI registered", "path", "/swagger/index.html")
	}

	if opts.UploadsURL != "" && opts.UploadsDir != "" {
		ginRouter.Static(opts.UploadsURL, opts.UploadsDir)
		logger.Info("Serving local uploads", "url", opts.UploadsURL, "dir", opts.UploadsDir)
	}
}
