package handler

import (
	"learnboard/internal/dto"
	"learnboard/internal/middleware"
	"learnboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	service service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

func validatedInt(c *fiber.Ctx, key string) int {
	n, _ := c.Locals(key).(int)
	return n
}

// GetStats godoc
// @Summary Dashboard summary
// @Description Quiz counts, deduplicated average score, study streak and topics studied
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.DashboardStats}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(stats))
}

// GetRecentActivity godoc
// @Summary Recent activity
// @Description Quiz creations and completions, most recent first
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries (1-50, default 10)"
// @Success 200 {object} dto.Envelope{data=[]dto.Activity}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /dashboard/activity [get]
func (h *DashboardHandler) GetRecentActivity(c *fiber.Ctx) error {
	feed, err := h.service.GetRecentActivity(c.UserContext(), middleware.UserID(c), validatedInt(c, middleware.ValidatedLimitKey))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(feed))
}

// GetTopicProgress godoc
// @Summary Topic progress rolled up to parent topics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=[]dto.TopicRollup}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /dashboard/progress [get]
func (h *DashboardHandler) GetTopicProgress(c *fiber.Ctx) error {
	rollups, err := h.service.GetTopicProgress(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(rollups))
}

// GetAllTopicProgress godoc
// @Summary Progress of every topic and subtopic
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=[]dto.TopicProgressItem}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /dashboard/progress/all [get]
func (h *DashboardHandler) GetAllTopicProgress(c *fiber.Ctx) error {
	items, err := h.service.GetAllTopicProgress(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(items))
}

// GetFullDashboard godoc
// @Summary Stats, recent activity and topic progress in one response
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of activity entries (1-50, default 10)"
// @Success 200 {object} dto.Envelope{data=dto.FullDashboard}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /dashboard/all [get]
func (h *DashboardHandler) GetFullDashboard(c *fiber.Ctx) error {
	full, err := h.service.GetFullDashboard(c.UserContext(), middleware.UserID(c), validatedInt(c, middleware.ValidatedLimitKey))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(full))
}
