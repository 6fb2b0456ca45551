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

type PgxPromoterRepository struct {
	BaseRepository
}

// newPgxPromoterRepository creates a new repository for promoter data.
func newPgxPromoterRepository(pool *pgxpool.Pool) portsrepo.PromoterRepositoryFacade {
	return &PgxPromoterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PromoterRepositoryFacade = (*PgxPromoterRepository)(nil)

const promoterColumns = `promoter_id, name, company, contact_email, contact_phone, city, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanPromoter(row pgx.Row) (models.Promoter, error) {
	var m models.Promoter
	err := row.Scan(
		&m.PromoterID,
		&m.Name,
		&m.Company,
		&m.ContactEmail,
		&m.ContactPhone,
		&m.City,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePromoter inserts a new promoter.
func (r *PgxPromoterRepository) SavePromoter(ctx context.Context, promoter domain.Promoter) error {
	m := mapping.ToModelPromoter(promoter)

	query := `
		INSERT INTO promoters (` + promoterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PromoterID,
		m.Name,
		m.Company,
		m.ContactEmail,
		m.ContactPhone,
		m.City,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: promoter with ID %s already exists", apperrors.ErrDuplicate, m.PromoterID)
		}
		return fmt.Errorf("failed to save promoter %s: %w", m.PromoterID, err)
	}
	return nil
}

// FindPromoterByID retrieves a promoter by its ID.
func (r *PgxPromoterRepository) FindPromoterByID(ctx context.Context, promoterID string) (*domain.Promoter, error) {
	query := `SELECT ` + promoterColumns + ` FROM promoters WHERE promoter_id = $1;`

	m, err := scanPromoter(r.Pool.QueryRow(ctx, query, promoterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find promoter by ID %s: %w", promoterID, err)
	}

	promoter := mapping.ToDomainPromoter(m)
	return &promoter, nil
}

// ListPromoters retrieves the promoter roster ordered by name.
func (r *PgxPromoterRepository) ListPromoters(ctx context.Context, includeInactive bool) ([]domain.Promoter, error) {
	query := `SELECT ` + promoterColumns + ` FROM promoters`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query promoters: %w", err)
	}
	defer rows.Close()

	promoters := []domain.Promoter{}
	for rows.Next() {
		m, scanErr := scanPromoter(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan promoter row: %w", scanErr)
		}
		promoters = append(promoters, mapping.ToDomainPromoter(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating promoter rows: %w", err)
	}
	return promoters, nil
}

// UpdatePromoter updates an existing promoter.
func (r *PgxPromoterRepository) UpdatePromoter(ctx context.Context, promoter domain.Promoter) error {
	m := mapping.ToModelPromoter(promoter)

	query := `
		UPDATE promoters
		SET name = $2, company = $3, contact_email = $4, contact_phone = $5,
		    city = $6, is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE promoter_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PromoterID,
		m.Name,
		m.Company,
		m.ContactEmail,
		m.ContactPhone,
		m.City,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update promoter %s: %w", m.PromoterID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
