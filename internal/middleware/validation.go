package middleware

import (
	"time"

	"learnboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys of validated query values.
const (
	ValidatedLimitKey  = "validated_limit"
	ValidatedYearKey   = "validated_year"
	ValidatedFromKey   = "validated_from"
	ValidatedToKey     = "validated_to"
	ValidatedQuizIDKey = "validated_quiz_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance. Dates in
// query strings are read in loc.
func NewValidationMiddleware(loc *time.Location) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(loc),
	}
}

// ValidateLimit validates the limit query parameter
func (vm *ValidationMiddleware) ValidateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, errors := vm.validator.ValidateLimit(c.Query("limit"))
		if len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		c.Locals(ValidatedLimitKey, limit)
		return c.Next()
	}
}

// ValidateYear validates the year query parameter
func (vm *ValidationMiddleware) ValidateYear() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, errors := vm.validator.ValidateYear(c.Query("year"))
		if len(errors) > 0 {
			return errors
		}
		c.Locals(ValidatedYearKey, year)
		return c.Next()
	}
}

// ValidateDateRange validates the from and to query parameters
func (vm *ValidationMiddleware) ValidateDateRange() fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to, errors := vm.validator.ValidateDateRange(c.Query("from"), c.Query("to"))
		if len(errors) > 0 {
			return errors
		}
		c.Locals(ValidatedFromKey, from)
		c.Locals(ValidatedToKey, to)
		return c.Next()
	}
}

// ValidateQuizID validates the quizId path parameter
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := c.Params("quizId")
		if errors := vm.validator.ValidateQuizID(quizID); len(errors) > 0 {
			return errors
		}
		c.Locals(ValidatedQuizIDKey, quizID)
		return c.Next()
	}
}
