package repositories

import (
	"context"
	"time"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID string) error

	// UpdateRefreshToken stores the hash and expiry of a user's refresh
	// token; clearing is done by passing empty values.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error
}
