package middleware

import (
	"fmt"
	"strings"

	"learnboard/internal/domain"
	"learnboard/internal/logger"
	"learnboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
)

// Protected is a middleware function that protects routes by requiring a valid JWT.
// It validates the token using the provided AuthService and sets the userID in the context.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("JWT validation error", zap.Error(err), zap.String("request_id", RequestID(c)))
			return domain.NewError(domain.CodeUnauthorized, "Invalid token", err)
		}

		if claims.TokenType != "" && claims.TokenType != "access" {
			return domain.NewUnauthorizedError(fmt.Sprintf("Invalid token type: expected access, got %s", claims.TokenType))
		}

		c.Locals(UserIDKey, claims.UserID)

		return c.Next()
	}
}

// UserID returns the user id set by Protected, or "" outside protected routes.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
