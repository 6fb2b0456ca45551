package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	"github.com/fechasapp/fechas_backend/internal/models"
	"github.com/fechasapp/fechas_backend/internal/utils/mapping"
)

type PgxArtistRepository struct {
	BaseRepository
}

// newPgxArtistRepository creates a new repository for artist data.
func newPgxArtistRepository(pool *pgxpool.Pool) portsrepo.ArtistRepositoryFacade {
	return &PgxArtistRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ArtistRepositoryFacade = (*PgxArtistRepository)(nil)

const artistColumns = `artist_id, name, genre, contact_email, contact_phone, base_fee, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanArtist(row pgx.Row) (models.Artist, error) {
	var m models.Artist
	err := row.Scan(
		&m.ArtistID,
		&m.Name,
		&m.Genre,
		&m.ContactEmail,
		&m.ContactPhone,
		&m.BaseFee,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveArtist inserts a new artist.
func (r *PgxArtistRepository) SaveArtist(ctx context.Context, artist domain.Artist) error {
	m := mapping.ToModelArtist(artist)

	query := `
		INSERT INTO artists (` + artistColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ArtistID,
		m.Name,
		m.Genre,
		m.ContactEmail,
		m.ContactPhone,
		m.BaseFee,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: artist with ID %s already exists", apperrors.ErrDuplicate, m.ArtistID)
		}
		return fmt.Errorf("failed to save artist %s: %w", m.ArtistID, err)
	}
	return nil
}

// FindArtistByID retrieves an artist by its ID.
func (r *PgxArtistRepository) FindArtistByID(ctx context.Context, artistID string) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE artist_id = $1;`

	m, err := scanArtist(r.Pool.QueryRow(ctx, query, artistID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find artist by ID %s: %w", artistID, err)
	}

	artist := mapping.ToDomainArtist(m)
	return &artist, nil
}

// ListArtists retrieves the artist roster ordered by name.
func (r *PgxArtistRepository) ListArtists(ctx context.Context, includeInactive bool) ([]domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	artists := []domain.Artist{}
	for rows.Next() {
		m, scanErr := scanArtist(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan artist row: %w", scanErr)
		}
		artists = append(artists, mapping.ToDomainArtist(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artist rows: %w", err)
	}
	return artists, nil
}

// UpdateArtist updates an existing artist.
func (r *PgxArtistRepository) UpdateArtist(ctx context.Context, artist domain.Artist) error {
	m := mapping.ToModelArtist(artist)

	query := `
		UPDATE artists
		SET name = $2, genre = $3, contact_email = $4, contact_phone = $5,
		    base_fee = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE artist_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ArtistID,
		m.Name,
		m.Genre,
		m.ContactEmail,
		m.ContactPhone,
		m.BaseFee,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update artist %s: %w", m.ArtistID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
