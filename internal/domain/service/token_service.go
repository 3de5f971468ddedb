package service

import (
	"time"

	"storefront/internal/domain/entity"
)

// Claims is the identity a validated token carries.
type Claims struct {
	UserID  entity.UserID
	IsAdmin bool
}

// TokenService defines the interface for generating and validating the
// access tokens that supply the authenticated user identity per request.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID entity.UserID, isAdmin bool) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of an access token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
