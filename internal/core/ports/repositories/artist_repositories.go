package repositories

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// ArtistRepositoryFacade defines persistence operations for artists.
type ArtistRepositoryFacade interface {
	SaveArtist(ctx context.Context, artist domain.Artist) error
	FindArtistByID(ctx context.Context, artistID string) (*domain.Artist, error)
	ListArtists(ctx context.Context, includeInactive bool) ([]domain.Artist, error)
	UpdateArtist(ctx context.Context, artist domain.Artist) error
}
