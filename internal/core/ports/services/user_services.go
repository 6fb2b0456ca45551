package services

import (
	"context"
	"time"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// UserSvcFacade defines operations for managing users and verifying
// credentials.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error

	// AuthenticateUser verifies email/password credentials; returns
	// apperrors.ErrUnauthorized on mismatch without revealing which part
	// failed.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByRefreshTokenHash resolves the user holding the given refresh
	// token hash; returns apperrors.ErrUnauthorized when no user holds it.
	GetUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error)

	// SetRefreshToken stores the hash/expiry of a newly issued refresh token.
	SetRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error

	// ClearRefreshToken invalidates the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}
