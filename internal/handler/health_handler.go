package handler

import (
	"context"
	"time"

	"learnboard/internal/domain"
	"learnboard/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the database answers.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 503 {object} dto.Envelope
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(dto.Fail(domain.NewInternalError("database unavailable", err).Error()))
	}
	return c.JSON(dto.OK(fiber.Map{"status": "ok"}))
}
