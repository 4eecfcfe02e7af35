package handler

import (
	"time"

	"learnboard/internal/dto"
	"learnboard/internal/middleware"
	"learnboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	service service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

func validatedDate(c *fiber.Ctx, key string) *time.Time {
	t, _ := c.Locals(key).(*time.Time)
	return t
}

// ProgressOverTime godoc
// @Summary Daily answered and correct counts
// @Description One point per calendar date, missing dates zero-filled. Defaults to the last 30 days.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope{data=[]dto.ProgressPoint}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /analytics/progress-over-time [get]
func (h *AnalyticsHandler) ProgressOverTime(c *fiber.Ctx) error {
	points, err := h.service.ProgressOverTime(c.UserContext(), middleware.UserID(c),
		validatedDate(c, middleware.ValidatedFromKey), validatedDate(c, middleware.ValidatedToKey))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(points))
}

// ActivityHeatmap godoc
// @Summary Activity count per calendar date
// @Description Answers, flashcards, quizzes, exams and exam sessions. Without year, the last 30 days.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param year query int false "Calendar year"
// @Success 200 {object} dto.Envelope{data=[]dto.HeatmapDay}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /analytics/activity-heatmap [get]
func (h *AnalyticsHandler) ActivityHeatmap(c *fiber.Ctx) error {
	days, err := h.service.ActivityHeatmap(c.UserContext(), middleware.UserID(c), validatedInt(c, middleware.ValidatedYearKey))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(days))
}

// AccuracyBreakdown godoc
// @Summary Overall and per-topic accuracy
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.AccuracyBreakdown}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /analytics/accuracy-breakdown [get]
func (h *AnalyticsHandler) AccuracyBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.service.AccuracyBreakdown(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(breakdown))
}

// QuizPerformanceTrend godoc
// @Summary Scores of the latest completed quizzes with a moving average
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=[]dto.QuizTrendPoint}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /analytics/quiz-performance-trend [get]
func (h *AnalyticsHandler) QuizPerformanceTrend(c *fiber.Ctx) error {
	trend, err := h.service.QuizPerformanceTrend(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(trend))
}

// FlashcardAnalytics godoc
// @Summary Flashcard mastery figures
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.FlashcardAnalytics}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /analytics/flashcard-analytics [get]
func (h *AnalyticsHandler) FlashcardAnalytics(c *fiber.Ctx) error {
	result, err := h.service.FlashcardAnalytics(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(result))
}

// BestWorstTopics godoc
// @Summary Strongest and weakest topics
// @Description Topics with fewer than five attempted questions are not ranked
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.BestWorstTopics}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /analytics/best-worst-topics [get]
func (h *AnalyticsHandler) BestWorstTopics(c *fiber.Ctx) error {
	ranked, err := h.service.BestWorstTopics(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(ranked))
}

// GetComprehensive godoc
// @Summary Every analytics view in one response
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.ComprehensiveAnalytics}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /analytics/comprehensive [get]
func (h *AnalyticsHandler) GetComprehensive(c *fiber.Ctx) error {
	bundle, err := h.service.GetComprehensive(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(bundle))
}
