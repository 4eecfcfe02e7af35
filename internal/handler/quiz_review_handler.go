package handler

import (
	"learnboard/internal/dto"
	"learnboard/internal/middleware"
	"learnboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizReviewHandler handles quiz review HTTP requests
type QuizReviewHandler struct {
	service service.QuizReviewService
}

// NewQuizReviewHandler creates a new QuizReviewHandler instance
func NewQuizReviewHandler(service service.QuizReviewService) *QuizReviewHandler {
	return &QuizReviewHandler{
		service: service,
	}
}

// GetQuizReview godoc
// @Summary Latest answer per question of a quiz
// @Description Explanations come from the question bank or, when configured, an LLM
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} dto.Envelope{data=dto.QuizReview}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /quizzes/{quizId}/review [get]
func (h *QuizReviewHandler) GetQuizReview(c *fiber.Ctx) error {
	quizID, _ := c.Locals(middleware.ValidatedQuizIDKey).(string)
	if quizID == "" {
		quizID = c.Params("quizId")
	}
	review, err := h.service.GetQuizReview(c.UserContext(), middleware.UserID(c), quizID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(review))
}
