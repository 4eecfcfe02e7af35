package handler

import (
	"learnboard/internal/domain"
	"learnboard/internal/middleware"
	"learnboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything RegisterRoutes mounts.
type Handlers struct {
	Auth       service.AuthService
	Validation *middleware.ValidationMiddleware
	Dashboard  *DashboardHandler
	Analytics  *AnalyticsHandler
	QuizReview *QuizReviewHandler
	Health     *HealthHandler
}

// RegisterRoutes mounts the health check and the protected /api routes. Anything
// else answers 404 with the envelope.
func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", h.Health.Check)

	api := app.Group("/api", middleware.Protected(h.Auth))

	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", h.Dashboard.GetStats)
	dashboard.Get("/activity", h.Validation.ValidateLimit(), h.Dashboard.GetRecentActivity)
	dashboard.Get("/progress", h.Dashboard.GetTopicProgress)
	dashboard.Get("/progress/all", h.Dashboard.GetAllTopicProgress)
	dashboard.Get("/all", h.Validation.ValidateLimit(), h.Dashboard.GetFullDashboard)

	analytics := api.Group("/analytics")
	analytics.Get("/progress-over-time", h.Validation.ValidateDateRange(), h.Analytics.ProgressOverTime)
	analytics.Get("/activity-heatmap", h.Validation.ValidateYear(), h.Analytics.ActivityHeatmap)
	analytics.Get("/accuracy-breakdown", h.Analytics.AccuracyBreakdown)
	analytics.Get("/quiz-performance-trend", h.Analytics.QuizPerformanceTrend)
	analytics.Get("/flashcard-analytics", h.Analytics.FlashcardAnalytics)
	analytics.Get("/best-worst-topics", h.Analytics.BestWorstTopics)
	analytics.Get("/comprehensive", h.Analytics.GetComprehensive)

	api.Get("/quizzes/:quizId/review", h.Validation.ValidateQuizID(), h.QuizReview.GetQuizReview)

	app.Use(func(c *fiber.Ctx) error {
		return domain.NewNotFoundError("route not found: " + c.Path())
	})
}
