package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"learnboard/internal/domain"
	"learnboard/internal/dto"
	"learnboard/internal/middleware"
	"learnboard/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ManualMockAuthService implements service.AuthService for middleware tests.
type ManualMockAuthService struct {
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateJWTFunc not set on mock")
}

func (m *ManualMockAuthService) CreateJWT(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	panic("not implemented in mock")
}

func newTestApp(authSvc *ManualMockAuthService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	app.Get("/me", middleware.Protected(authSvc), func(c *fiber.Ctx) error {
		return c.JSON(dto.OK(middleware.UserID(c)))
	})
	return app
}

func decodeEnvelope(t *testing.T, body io.Reader) dto.Envelope {
	t.Helper()
	var env dto.Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func TestProtected(t *testing.T) {
	const userID = "6f1c2a58-7d0e-4d35-9b0a-0f6a3f1d2c11"

	tests := []struct {
		name           string
		authHeader     string
		validate       func(ctx context.Context, token string) (*dto.AuthClaims, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer good",
			validate:       func(ctx context.Context, token string) (*dto.AuthClaims, error) { return &dto.AuthClaims{UserID: userID, TokenType: "access"}, nil },
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "missing header",
			expectedStatus: fiber.StatusUnauthorized,
			expectedError:  "Authorization header is missing",
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: fiber.StatusUnauthorized,
			expectedError:  "Authorization scheme is not Bearer",
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad",
			validate: func(ctx context.Context, token string) (*dto.AuthClaims, error) {
				return nil, errors.New("token is expired")
			},
			expectedStatus: fiber.StatusUnauthorized,
			expectedError:  "Invalid token: token is expired",
		},
		{
			name:       "refresh token",
			authHeader: "Bearer refresh",
			validate: func(ctx context.Context, token string) (*dto.AuthClaims, error) {
				return &dto.AuthClaims{UserID: userID, TokenType: "refresh"}, nil
			},
			expectedStatus: fiber.StatusUnauthorized,
			expectedError:  "Invalid token type: expected access, got refresh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&ManualMockAuthService{ValidateJWTFunc: tt.validate})

			req := httptest.NewRequest("GET", "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.True(t, util.IsULID(resp.Header.Get(middleware.RequestIDHeader)))

			env := decodeEnvelope(t, resp.Body)
			if tt.expectedError == "" {
				assert.True(t, env.Success)
				assert.Equal(t, userID, env.Data)
				assert.Nil(t, env.Error)
				return
			}
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.expectedError, *env.Error)
		})
	}
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "validation",
			err:            domain.ValidationErrors{domain.NewOutOfRangeError("limit", 99, 1, 50)},
			expectedStatus: fiber.StatusBadRequest,
			expectedError:  "limit: value 99 is out of range [1, 50]",
		},
		{
			name:           "fetch failure",
			err:            domain.NewFetchError("answers", errors.New("ORA-01017: invalid username/password")),
			expectedStatus: fiber.StatusInternalServerError,
			expectedError:  "failed to fetch answers: ORA-01017: invalid username/password",
		},
		{
			name:           "not found",
			err:            domain.NewNotFoundError("route not found"),
			expectedStatus: fiber.StatusNotFound,
			expectedError:  "route not found",
		},
		{
			name:           "fiber error",
			err:            fiber.ErrMethodNotAllowed,
			expectedStatus: fiber.StatusMethodNotAllowed,
			expectedError:  "Method Not Allowed",
		},
		{
			name:           "unknown",
			err:            errors.New("nil map write"),
			expectedStatus: fiber.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			app.Get("/fail", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			env := decodeEnvelope(t, resp.Body)
			assert.False(t, env.Success)
			assert.Nil(t, env.Data)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.expectedError, *env.Error)
		})
	}
}

func TestRequestLogger_KeepsIncomingULID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString(middleware.RequestID(c)) })

	id := util.NewULID()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, id)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, id, string(body))
	assert.Equal(t, id, resp.Header.Get(middleware.RequestIDHeader))
}

func TestValidationMiddleware(t *testing.T) {
	vm := middleware.NewValidationMiddleware(time.UTC)
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/activity", vm.ValidateLimit(), func(c *fiber.Ctx) error {
		return c.JSON(dto.OK(c.Locals(middleware.ValidatedLimitKey)))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/activity?limit=7", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, float64(7), env.Data)

	resp, err = app.Test(httptest.NewRequest("GET", "/activity?limit=abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRequestTimeout_BoundsUserContext(t *testing.T) {
	var seen context.Context
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestTimeout(50 * time.Millisecond))
	app.Get("/slow", func(c *fiber.Ctx) error {
		seen = c.UserContext()
		deadline, ok := seen.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)

		select {
		case <-seen.Done():
			return domain.NewFetchError("answers", seen.Err())
		case <-time.After(time.Second):
			return c.JSON(dto.OK("too late"))
		}
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/slow", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	env := decodeEnvelope(t, resp.Body)
	require.NotNil(t, env.Error)
	assert.Equal(t, "failed to fetch answers: context deadline exceeded", *env.Error)
	assert.ErrorIs(t, seen.Err(), context.DeadlineExceeded)
}

func TestRequestTimeout_ZeroDisablesDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestTimeout(0))
	app.Get("/", func(c *fiber.Ctx) error {
		_, ok := c.UserContext().Deadline()
		assert.False(t, ok)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
