package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
	"github.com/fechasapp/fechas_backend/internal/utils"
)

// userService provides user management and credential verification.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if existing, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	user.CreatedBy = user.UserID
	user.LastUpdatedBy = user.UserID

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID != requestingUserID {
		return nil, fmt.Errorf("%w: users can only update themselves", apperrors.ErrUnauthorized)
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID != requestingUserID {
		return fmt.Errorf("%w: users can only delete themselves", apperrors.ErrUnauthorized)
	}
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		logger.Error("Failed to delete user", slog.String("user_id", userID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}

	logger.Info("User deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies credentials. It returns apperrors.ErrUnauthorized
// for both unknown email and wrong password, so callers cannot tell which
// part failed.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUserByRefreshTokenHash(ctx context.Context, refreshTokenHash string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, refreshTokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user by refresh token: %w", err)
	}
	return user, nil
}

func (s *userService) SetRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, expiry); err != nil {
		return fmt.Errorf("failed to store refresh token for user %s: %w", userID, err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	return nil
}
