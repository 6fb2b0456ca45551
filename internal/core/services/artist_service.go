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
)

// artistService provides artist roster operations.
type artistService struct {
	BaseService
	artistRepo portsrepo.ArtistRepositoryFacade
}

// NewArtistService creates a new ArtistService.
func NewArtistService(artistRepo portsrepo.ArtistRepositoryFacade) portssvc.ArtistSvcFacade {
	return &artistService{artistRepo: artistRepo}
}

var _ portssvc.ArtistSvcFacade = (*artistService)(nil)

func (s *artistService) CreateArtist(ctx context.Context, req dto.CreateArtistRequest, creatorUserID string) (*domain.Artist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BaseFee.IsNegative() {
		return nil, fmt.Errorf("%w: base fee must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	artist := domain.Artist{
		ArtistID:     uuid.NewString(),
		Name:         req.Name,
		Genre:        req.Genre,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		BaseFee:      req.BaseFee,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.artistRepo.SaveArtist(ctx, artist); err != nil {
		logger.Error("Failed to save artist", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save artist: %w", err)
	}

	logger.Info("Artist created", slog.String("artist_id", artist.ArtistID))
	return &artist, nil
}

func (s *artistService) GetArtistByID(ctx context.Context, artistID string) (*domain.Artist, error) {
	artist, err := s.artistRepo.FindArtistByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("artist %s not found", artistID))
		}
		return nil, fmt.Errorf("failed to find artist %s: %w", artistID, err)
	}
	return artist, nil
}

func (s *artistService) ListArtists(ctx context.Context, includeInactive bool) ([]domain.Artist, error) {
	artists, err := s.artistRepo.ListArtists(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, artistID string, req dto.UpdateArtistRequest, requestingUserID string) (*domain.Artist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	artist, err := s.GetArtistByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		artist.Name = *req.Name
	}
	if req.Genre != nil {
		artist.Genre = *req.Genre
	}
	if req.ContactEmail != nil {
		artist.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		artist.ContactPhone = *req.ContactPhone
	}
	if req.BaseFee != nil {
		if req.BaseFee.IsNegative() {
			return nil, fmt.Errorf("%w: base fee must not be negative", apperrors.ErrValidation)
		}
		artist.BaseFee = *req.BaseFee
	}
	if req.IsActive != nil {
		artist.IsActive = *req.IsActive
	}

	artist.LastUpdatedAt = time.Now().UTC()
	artist.LastUpdatedBy = requestingUserID

	if err := s.artistRepo.UpdateArtist(ctx, *artist); err != nil {
		logger.Error("Failed to update artist", slog.String("artist_id", artistID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update artist %s: %w", artistID, err)
	}

	logger.Info("Artist updated", slog.String("artist_id", artistID))
	return artist, nil
}
