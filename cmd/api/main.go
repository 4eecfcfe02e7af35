// @title Learnboard API
// @version 1.0
// @description Learner dashboard and analytics aggregation API.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "learnboard/cmd/api/docs"
	"learnboard/internal/adapter/explainer"
	"learnboard/internal/config"
	"learnboard/internal/database"
	"learnboard/internal/handler"
	"learnboard/internal/logger"
	"learnboard/internal/middleware"
	"learnboard/internal/repository"
	"learnboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		appLogger.Fatal("Invalid analytics timezone", zap.Error(err))
	}

	// Connect to database
	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	store := repository.NewSQLXStore(db, cfg.DB.QueryTimeout)

	explanations, err := explainer.NewOllamaExplainer(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	if explanations == nil {
		appLogger.Info("LLM explanations disabled, quiz reviews use stored explanations only")
	} else {
		appLogger.Info("LLM explainer initialized", zap.String("server_url", cfg.LLM.ServerURL), zap.String("model", cfg.LLM.Model))
	}

	// Initialize services
	clock := service.SystemClock(loc)
	dashboardService := service.NewDashboardService(store, clock, cfg.Analytics.RecentActivityLimit)
	analyticsService := service.NewAnalyticsService(store, clock)
	quizReviewService := service.NewQuizReviewService(store, explanations)
	authService, err := service.NewAuthService(cfg.JWT.SecretKey)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Auth:       authService,
		Validation: middleware.NewValidationMiddleware(loc),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Analytics:  handler.NewAnalyticsHandler(analyticsService),
		QuizReview: handler.NewQuizReviewHandler(quizReviewService),
		Health:     handler.NewHealthHandler(db),
	})

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("driver", cfg.DB.Driver),
			zap.String("timezone", loc.String()))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
