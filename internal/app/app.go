package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/telemetry"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database migrated")
	}

	shutdownTracing, tracing, err := telemetry.InitTracing(ctx, telemetry.TracingConfig{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    strings.HasPrefix(cfg.Telemetry.OTLPEndpoint, "http://"),
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracing", "error", err)
	}

	storageInstance, err := newStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailProvider := newEmailProvider(cfg)
	defer emailProvider.Close()

	ginRouter, serviceContainer, err := SetupRouter(cfg, gormDB, storageInstance, emailProvider, tracing)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	var digest *workers.DigestWorker
	if cfg.Scheduler.Enabled {
		digest, err = workers.NewDigestWorker(gormDB, cfg.Scheduler.Spec, cfg.Scheduler.Timezone)
		if err != nil {
			logger.Fatal("Failed to configure digest worker", "error", err)
		}
		if err := digest.Start(ctx); err != nil {
			logger.Fatal("Failed to start digest worker", "error", err)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server startup error", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if digest != nil {
		digest.Stop()
	}
	serviceContainer.NotificationService.Wait()
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Tracing shutdown error", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и gin.Engine со всеми middleware и маршрутами
func SetupRouter(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	emailProvider email.Provider,
	tracing bool,
) (*gin.Engine, *services.ServiceContainer, error) {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLSeconds)*time.Second)
	if err != nil {
		return nil, nil, err
	}

	customValidator := validator.New()

	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Storage:       storageInstance,
		EmailProvider: emailProvider,
		Tokens:        tokens,
		Validator:     customValidator,
		UploadConfig: &services.UploadConfig{
			MaxFileSize:       cfg.Upload.MaxSize,
			ResumeTypes:       cfg.Upload.ResumeTypes,
			ProfileImageTypes: cfg.Upload.ProfileImageTypes,
		},
	})

	// 2. Хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer, customValidator, tokens)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB, tracing)

	// 4. Маршруты
	opts := routes.Options{
		Metrics: cfg.Telemetry.MetricsEnabled,
		Swagger: !cfg.IsProduction(),
	}
	if cfg.Storage.Type == "local" && strings.HasPrefix(cfg.Storage.BaseURL, "/") {
		opts.UploadsURL = cfg.Storage.BaseURL
		opts.UploadsDir = cfg.Storage.BasePath
	}
	authMiddleware := middleware.AuthMiddleware(serviceContainer.AuthService, cfg.JWT.CookieName)
	routes.RegisterRoutes(ginRouter, appHandlers, authMiddleware, opts)

	return ginRouter, serviceContainer, nil
}

func initializeHandlers(
	cfg *config.Config,
	services *services.ServiceContainer,
	customValidator *validator.Validator,
	tokens *auth.TokenManager,
) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, services.AuthService, handlers.CookieConfig{
			Name:   cfg.JWT.CookieName,
			TTL:    tokens.TTL(),
			Secure: cfg.IsProduction(),
		}),
		JobHandler:         handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, services.ProfileService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, tracing bool) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	if tracing {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	if cfg.Telemetry.MetricsEnabled {
		router.Use(telemetry.MetricsMiddleware())
	}
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	return storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
}

// newEmailProvider - без SMTP хоста письма только пишутся в лог
func newEmailProvider(cfg *config.Config) email.Provider {
	var smtpConfig *email.SMTPConfig
	if cfg.Email.SMTPHost != "" {
		smtpConfig = email.DefaultConfig()
		smtpConfig.Host = cfg.Email.SMTPHost
		if cfg.Email.SMTPPort != 0 {
			smtpConfig.Port = cfg.Email.SMTPPort
		}
		smtpConfig.Username = cfg.Email.SMTPUsername
		smtpConfig.Password = cfg.Email.SMTPPassword
		if cfg.Email.FromEmail != "" {
			smtpConfig.FromEmail = cfg.Email.FromEmail
		}
		if cfg.Email.FromName != "" {
			smtpConfig.FromName = cfg.Email.FromName
		}
	} else {
		logger.Warn("SMTP host is not configured, emails will only be logged")
	}
	return email.NewProvider(smtpConfig, email.NewTemplateManager())
}
