package services

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/dto"
)

// TokenSvcFacade defines the token lifecycle: credential login, rotation via
// refresh token and logout.
type TokenSvcFacade interface {
	// Login verifies credentials and issues an access token plus a refresh
	// token. The refresh token is returned raw for cookie delivery; only its
	// hash is stored.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error)

	// RefreshAccessToken rotates the token pair given a valid, unexpired
	// refresh token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.RefreshTokenResponse, string, error)

	// Logout invalidates the stored refresh token for the user.
	Logout(ctx context.Context, userID string) error
}
