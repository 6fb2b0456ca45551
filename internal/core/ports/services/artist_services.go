package services

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// ArtistSvcFacade defines operations for managing artists.
type ArtistSvcFacade interface {
	CreateArtist(ctx context.Context, req dto.CreateArtistRequest, creatorUserID string) (*domain.Artist, error)
	GetArtistByID(ctx context.Context, artistID string) (*domain.Artist, error)
	ListArtists(ctx context.Context, includeInactive bool) ([]domain.Artist, error)
	UpdateArtist(ctx context.Context, artistID string, req dto.UpdateArtistRequest, requestingUserID string) (*domain.Artist, error)
}
