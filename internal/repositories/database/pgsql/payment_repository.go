package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	"github.com/fechasapp/fechas_backend/internal/models"
	"github.com/fechasapp/fechas_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for the payment ledger.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// lockEventCeiling locks the parent event row and returns its negotiated
// total. Every ledger write goes through this lock, which serializes
// concurrent writes against the same event.
func lockEventCeiling(ctx context.Context, tx pgx.Tx, eventID string) (decimal.Decimal, error) {
	var negotiatedTotal decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT negotiated_total FROM events WHERE event_id = $1 FOR UPDATE;`, eventID).Scan(&negotiatedTotal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}
	return negotiatedTotal, nil
}

// sumCommittedPayments recomputes the ledger total from committed rows inside
// the transaction, optionally excluding one entry.
func sumCommittedPayments(ctx context.Context, tx pgx.Tx, eventID string, excludePaymentID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payment_entries WHERE event_id = $1`
	args := []interface{}{eventID}
	if excludePaymentID != "" {
		query += ` AND payment_id != $2`
		args = append(args, excludePaymentID)
	}

	var total decimal.Decimal
	if err := tx.QueryRow(ctx, query+";", args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for event %s: %w", eventID, err)
	}
	return total, nil
}

// SavePaymentEntry inserts a payment after re-checking the negotiated-total
// ceiling against the committed ledger under the event row lock.
func (r *PgxPaymentRepository) SavePaymentEntry(ctx context.Context, entry domain.PaymentEntry) error {
	m := mapping.ToModelPaymentEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	negotiatedTotal, err := lockEventCeiling(ctx, tx, m.EventID)
	if err != nil {
		return err
	}

	currentTotal, err := sumCommittedPayments(ctx, tx, m.EventID, "")
	if err != nil {
		return err
	}

	if err := domain.ValidatePaymentInsert(negotiatedTotal, currentTotal, entry.Amount); err != nil {
		return err
	}

	query := `
		INSERT INTO payment_entries (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		m.PaymentID,
		m.EventID,
		m.Type,
		m.Amount,
		m.PaymentDate,
		m.Method,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdatePaymentEntry updates an entry after re-checking the ceiling against
// the committed ledger without this entry's previous amount.
func (r *PgxPaymentRepository) UpdatePaymentEntry(ctx context.Context, entry domain.PaymentEntry) error {
	m := mapping.ToModelPaymentEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	negotiatedTotal, err := lockEventCeiling(ctx, tx, m.EventID)
	if err != nil {
		return err
	}

	var oldAmount decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT amount FROM payment_entries WHERE payment_id = $1;`, m.PaymentID).Scan(&oldAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find payment %s: %w", m.PaymentID, err)
	}

	otherTotal, err := sumCommittedPayments(ctx, tx, m.EventID, m.PaymentID)
	if err != nil {
		return err
	}

	// otherTotal already excludes this entry, so validate as a plain insert
	// of the new amount against the remainder of the ledger.
	if err := domain.ValidatePaymentUpdate(negotiatedTotal, otherTotal.Add(oldAmount), oldAmount, entry.Amount); err != nil {
		return err
	}

	query := `
		UPDATE payment_entries
		SET amount = $2, payment_date = $3, method = $4, note = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE payment_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.Amount,
		m.PaymentDate,
		m.Method,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindPaymentByID retrieves a single payment entry.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentEntry, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_entries WHERE payment_id = $1;`

	var p models.PaymentEntry
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&p.PaymentID,
		&p.EventID,
		&p.Type,
		&p.Amount,
		&p.PaymentDate,
		&p.Method,
		&p.Note,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	entry := mapping.ToDomainPaymentEntry(p)
	return &entry, nil
}

// FindPaymentsByEventID retrieves an event's ledger ordered by creation time.
func (r *PgxPaymentRepository) FindPaymentsByEventID(ctx context.Context, eventID string) ([]domain.PaymentEntry, error) {
	return loadPaymentEntries(ctx, r.Pool, eventID)
}

// DeletePaymentEntry removes an entry. Deletion only frees headroom under the
// ceiling, so no aggregate re-check is needed.
func (r *PgxPaymentRepository) DeletePaymentEntry(ctx context.Context, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payment_entries WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
