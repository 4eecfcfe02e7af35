package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnboard/internal/dto"
	"learnboard/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	tokenTypeAccess = "access"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrInvalidSubject  = errors.New("token subject is not a user id")
	ErrMissingSecret   = errors.New("jwt secret key is not configured")
)

// AuthService validates the bearer tokens issued by the learning platform.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, userID string, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	secretKey []byte
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(secretKey string) (AuthService, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	return &authServiceImpl{secretKey: []byte(secretKey)}, nil
}

// CreateJWT issues an access token for userID. The API never logs users in; the
// seed command uses this to hand out development tokens.
func (s *authServiceImpl) CreateJWT(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSubject, err)
	}
	now := time.Now()
	claims := dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func tokenSnippet(token string) string {
	return token[:min(len(token), 20)] + "..."
}

// ValidateJWT checks the signature and expiry and returns the claims. The user id
// comes from the user_id claim or, failing that, the subject, and must be a UUID.
func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired",
				zap.Error(err),
				zap.String("token_snippet", tokenSnippet(tokenString)))
		} else {
			appLogger.Warn("JWT validation failed",
				zap.Error(err),
				zap.String("token_snippet", tokenSnippet(tokenString)))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		appLogger.Warn("JWT carries no valid user id", zap.String("user_id", claims.UserID))
		return nil, fmt.Errorf("%w: %w", ErrInvalidJWTToken, ErrInvalidSubject)
	}
	return claims, nil
}
