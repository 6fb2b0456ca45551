package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
	"github.com/fechasapp/fechas_backend/internal/utils"
	"github.com/fechasapp/fechas_backend/pkg/config"
)

// tokenService implements the TokenSvcFacade for JWT and refresh tokens.
type tokenService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// Login verifies credentials and issues an access/refresh token pair. The raw
// refresh token is returned separately for cookie delivery; only its SHA256
// hash is persisted.
func (s *tokenService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userService.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, "", err
	}

	accessToken, expiresAt, err := s.issueAccessToken(user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	rawRefreshToken, err := s.issueRefreshToken(ctx, user.UserID)
	if err != nil {
		return nil, "", err
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, rawRefreshToken, nil
}

// RefreshAccessToken rotates the token pair. The presented token is hashed
// and matched against the stored hash; a stale or unknown token is rejected
// as unauthorized.
func (s *tokenService) RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.RefreshTokenResponse, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if refreshToken == "" {
		return nil, "", apperrors.ErrUnauthorized
	}

	user, err := s.userService.GetUserByRefreshTokenHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		return nil, "", err
	}

	if user.RefreshTokenExpiryTime == nil || time.Now().After(*user.RefreshTokenExpiryTime) {
		logger.Info("Refresh token expired", slog.String("user_id", user.UserID))
		return nil, "", apperrors.ErrRefreshTokenExpired
	}

	accessToken, expiresAt, err := s.issueAccessToken(user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	// Rotate: the presented token is single use.
	rawRefreshToken, err := s.issueRefreshToken(ctx, user.UserID)
	if err != nil {
		return nil, "", err
	}

	return &dto.RefreshTokenResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
	}, rawRefreshToken, nil
}

// Logout invalidates the stored refresh token for the user.
func (s *tokenService) Logout(ctx context.Context, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.userService.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	logger.Info("User logged out", slog.String("user_id", userID))
	return nil
}

func (s *tokenService) issueAccessToken(user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// issueRefreshToken generates a fresh random token, stores its hash and
// expiry, and returns the raw value.
func (s *tokenService) issueRefreshToken(ctx context.Context, userID string) (string, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userService.SetRefreshToken(ctx, userID, utils.HashRefreshToken(raw), &expiry); err != nil {
		return "", err
	}
	return raw, nil
}
