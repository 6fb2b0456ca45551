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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for the expense ledger.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpenseEntry inserts an expense entry. Expenses have no ceiling, so no
// aggregate check is involved.
func (r *PgxExpenseRepository) SaveExpenseEntry(ctx context.Context, entry domain.ExpenseEntry) error {
	m := mapping.ToModelExpenseEntry(entry)

	query := `
		INSERT INTO expense_entries (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.EventID,
		m.Category,
		m.Description,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
			}
			if pgErr.Code == "23503" {
				return fmt.Errorf("%w: unknown event reference", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves a single expense entry.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseEntry, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense_entries WHERE expense_id = $1;`

	var e models.ExpenseEntry
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&e.ExpenseID,
		&e.EventID,
		&e.Category,
		&e.Description,
		&e.Amount,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	entry := mapping.ToDomainExpenseEntry(e)
	return &entry, nil
}

// FindExpensesByEventID retrieves an event's expense ledger ordered by
// creation time.
func (r *PgxExpenseRepository) FindExpensesByEventID(ctx context.Context, eventID string) ([]domain.ExpenseEntry, error) {
	return loadExpenseEntries(ctx, r.Pool, eventID)
}

// UpdateExpenseEntry updates an existing expense entry.
func (r *PgxExpenseRepository) UpdateExpenseEntry(ctx context.Context, entry domain.ExpenseEntry) error {
	m := mapping.ToModelExpenseEntry(entry)

	query := `
		UPDATE expense_entries
		SET category = $2, description = $3, amount = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Category,
		m.Description,
		m.Amount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpenseEntry removes an expense entry.
func (r *PgxExpenseRepository) DeleteExpenseEntry(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expense_entries WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
