package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bountyboard_backend/database"
	"bountyboard_backend/internal/auth"
	"bountyboard_backend/internal/config"
	"bountyboard_backend/internal/email"
	"bountyboard_backend/internal/format"
	"bountyboard_backend/internal/handlers"
	"bountyboard_backend/internal/i18n"
	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/metrics"
	"bountyboard_backend/internal/middleware"
	"bountyboard_backend/internal/repositories"
	"bountyboard_backend/internal/routes"
	"bountyboard_backend/internal/services"
	"bountyboard_backend/internal/validator"
	"bountyboard_backend/internal/view"
	"bountyboard_backend/internal/workers"
	"bountyboard_backend/pkg/apperrors"
	"bountyboard_backend/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Application - собранное приложение: роутер и фоновые части, которым
// нужен общий ctx.
type Application struct {
	Router    *gin.Engine
	Services  *services.ServiceContainer
	WSManager *ws.WebSocketManager
	Workers   *workers.Runner
	Tokens    *auth.TokenManager
}

func Run() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database connected")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := Build(cfg, gormDB)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		application.WSManager.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return application.Workers.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("Server stopped with error", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает приложение и возвращает только роутер (для тестов).
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	return Build(cfg, gormDB).Router
}

func Build(cfg *config.Config, gormDB *gorm.DB) *Application {
	metrics.Init()
	apperrors.SetDebug(cfg.Server.Env != "production")
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL())
	wsManager := ws.NewWebSocketManager()

	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg, wsManager)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. WebSocket: новое соединение сразу получает текущий счётчик
	notificationService := serviceContainer.NotificationService
	wsHandler := ws.NewWebSocketHandler(wsManager, func(c *gin.Context, userID string) (int64, error) {
		return notificationService.UnreadCount(c.Request.Context(), gormDB, userID)
	}, cfg.Server.AllowedOrigins)

	// 4. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler, tokens)

	runner := workers.NewRunner(
		workers.NewBountyWorker(gormDB, repositories.NewBountyRepository(), serviceContainer.NotificationService),
		workers.NewNotificationCleanupWorker(gormDB, serviceContainer.NotificationService, cfg.Workers.RetentionDays),
		cfg.Workers.ExpiryInterval,
		cfg.Workers.CleanupInterval,
	)

	return &Application{
		Router:    ginRouter,
		Services:  serviceContainer,
		WSManager: wsManager,
		Workers:   runner,
		Tokens:    tokens,
	}
}

func initializeServices(cfg *config.Config, pusher services.UnreadPusher) *services.ServiceContainer {
	var provider email.Provider
	if cfg.Email.Enabled {
		templates, err := email.NewDefaultTemplateManager()
		if err != nil {
			logger.Fatal("Failed to parse email templates", "error", err)
		}
		provider = email.NewSMTPProvider(email.SMTPConfigFrom(cfg), templates)
	} else {
		logger.Warn("Email is disabled, using mock provider")
		provider = &email.MockProvider{}
	}

	presenter := view.NewPresenter(format.NewMarkdown(), cfg.Files.Gateway, cfg.Files.ImageExtensions)

	// --- Инициализация репозиториев ---
	bountyRepo := repositories.NewBountyRepository()
	fulfillmentRepo := repositories.NewFulfillmentRepository()
	reviewRepo := repositories.NewReviewRepository()
	notificationRepo := repositories.NewNotificationRepository()

	// --- Инициализация сервисов ---
	emailService := services.NewEmailService(provider, cfg.Email.SiteURL)
	notificationService := services.NewNotificationService(notificationRepo, presenter, pusher)
	submissionService := services.NewSubmissionService(bountyRepo, fulfillmentRepo, notificationService, emailService, presenter)
	reviewService := services.NewReviewService(reviewRepo, fulfillmentRepo, notificationService, emailService)

	return &services.ServiceContainer{
		SubmissionService:   submissionService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
		EmailService:        emailService,
	}
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		SubmissionHandler:   handlers.NewSubmissionHandler(baseHandler, services.SubmissionService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, services.ReviewService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService, cfg.Notifications.PageSize),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LocalizerMiddleware(i18n.MustNewBundle(), cfg.Locale))
	router.Use(middleware.DBMiddleware(db))
	return router
}
