package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/models"
	"github.com/fechasapp/fechas_backend/internal/utils/mapping"
	"github.com/fechasapp/fechas_backend/internal/utils/pagination"
)

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, name, venue, city, event_date, artist_id, promoter_id, status, negotiated_total, advance_amount, second_payment_amount, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Name,
		&m.Venue,
		&m.City,
		&m.EventDate,
		&m.ArtistID,
		&m.PromoterID,
		&m.Status,
		&m.NegotiatedTotal,
		&m.AdvanceAmount,
		&m.SecondPaymentAmount,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveEvent inserts a new event.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.Name,
		m.Venue,
		m.City,
		m.EventDate,
		m.ArtistID,
		m.PromoterID,
		m.Status,
		m.NegotiatedTotal,
		m.AdvanceAmount,
		m.SecondPaymentAmount,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: event with ID %s already exists", apperrors.ErrDuplicate, m.EventID)
			}
			if pgErr.Code == "23503" { // FK violation on artist/promoter
				return fmt.Errorf("%w: unknown artist or promoter reference", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save event %s: %w", m.EventID, err)
	}
	return nil
}

// FindEventByID retrieves an event with its payment and expense ledgers.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`

	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}

	event := mapping.ToDomainEvent(m)

	payments, err := loadPaymentEntries(ctx, r.Pool, eventID)
	if err != nil {
		return nil, err
	}
	event.Payments = payments

	expenses, err := loadExpenseEntries(ctx, r.Pool, eventID)
	if err != nil {
		return nil, err
	}
	event.Expenses = expenses

	return &event, nil
}

// ListEvents retrieves a filtered, token-paginated list of events ordered by
// event date descending. Ledgers are not loaded for listings.
func (r *PgxEventRepository) ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine if there is a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	args := []interface{}{}

	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		query += " AND " + clause + "$" + strconv.Itoa(len(args))
	}

	if params.Status != "" {
		addArg("status = ", params.Status)
	}
	if params.ArtistID != "" {
		addArg("artist_id = ", params.ArtistID)
	}
	if params.PromoterID != "" {
		addArg("promoter_id = ", params.PromoterID)
	}
	if params.FromDate != nil {
		addArg("event_date >= ", *params.FromDate)
	}
	if params.ToDate != nil {
		addArg("event_date <= ", *params.ToDate)
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := strconv.Itoa(len(args))
		query += " AND (name ILIKE $" + n + " OR venue ILIKE $" + n + " OR city ILIKE $" + n + ")"
	}

	if params.NextToken != nil && *params.NextToken != "" {
		lastEventDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*params.NextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastEventDate, lastCreatedAt)
		query += " AND (event_date, created_at) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY event_date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	modelEvents := make([]models.Event, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, nil, fmt.Errorf("failed to scan event row: %w", scanErr)
		}
		modelEvents = append(modelEvents, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	var nextTokenVal *string
	if len(modelEvents) > limit {
		last := modelEvents[limit-1]
		token := pagination.EncodeToken(last.EventDate, last.CreatedAt)
		nextTokenVal = &token
		modelEvents = modelEvents[:limit]
	}

	events := make([]domain.Event, len(modelEvents))
	for i, m := range modelEvents {
		events[i] = mapping.ToDomainEvent(m)
	}
	return events, nextTokenVal, nil
}

// UpdateEvent updates the editable fields of an event. Status is deliberately
// excluded; it only moves through ChangeEventStatus. The event row is locked
// and the committed payment sum recomputed before the new negotiated total is
// written, so a payment committed after the caller's snapshot cannot end up
// above a freshly lowered ceiling.
func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := lockEventCeiling(ctx, tx, m.EventID); err != nil {
		return err
	}

	committedTotal, err := sumCommittedPayments(ctx, tx, m.EventID, "")
	if err != nil {
		return err
	}
	if err := domain.ValidateCeilingChange(event.NegotiatedTotal, committedTotal); err != nil {
		return err
	}

	query := `
		UPDATE events
		SET name = $2, venue = $3, city = $4, event_date = $5,
		    negotiated_total = $6, advance_amount = $7, second_payment_amount = $8,
		    notes = $9, last_updated_at = $10, last_updated_by = $11
		WHERE event_id = $1;
	`
	if _, err := tx.Exec(ctx, query,
		m.EventID,
		m.Name,
		m.Venue,
		m.City,
		m.EventDate,
		m.NegotiatedTotal,
		m.AdvanceAmount,
		m.SecondPaymentAmount,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, err)
	}

	return r.Commit(ctx, tx)
}

// ChangeEventStatus moves an event to a new status. The event row is locked
// for the duration of the transaction and the payment aggregate is recomputed
// from the committed ledger before the lifecycle validation runs, so the
// CONFIRMADA and CERRADA guards always see the sums a concurrent payment
// write left behind.
func (r *PgxEventRepository) ChangeEventStatus(ctx context.Context, eventID string, toStatus domain.EventStatus, updatedByUserID string) (*domain.Event, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1 FOR UPDATE;`
	m, err := scanEvent(tx.QueryRow(ctx, lockQuery, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock event %s: %w", eventID, err)
	}
	event := mapping.ToDomainEvent(m)

	payments, err := loadPaymentEntries(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}
	event.Payments = payments

	agg := domain.AggregatePayments(payments)
	if err := domain.ValidateTransition(&event, toStatus, agg); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updateQuery := `
		UPDATE events
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE event_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, eventID, string(toStatus), now, updatedByUserID); err != nil {
		return nil, fmt.Errorf("failed to update status for event %s: %w", eventID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	event.Status = toStatus
	event.LastUpdatedAt = now
	event.LastUpdatedBy = updatedByUserID
	return &event, nil
}

// DeleteEvent removes an event; ledger rows go with it via ON DELETE CASCADE.
func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, letting the ledger
// loaders run inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const paymentColumns = `payment_id, event_id, type, amount, payment_date, method, note, created_at, created_by, last_updated_at, last_updated_by`

func loadPaymentEntries(ctx context.Context, q querier, eventID string) ([]domain.PaymentEntry, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_entries WHERE event_id = $1 ORDER BY created_at;`
	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for event %s: %w", eventID, err)
	}
	defer rows.Close()

	entries := []models.PaymentEntry{}
	for rows.Next() {
		var p models.PaymentEntry
		if err := rows.Scan(
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
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row for event %s: %w", eventID, err)
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows for event %s: %w", eventID, err)
	}
	return mapping.ToDomainPaymentEntrySlice(entries), nil
}

const expenseColumns = `expense_id, event_id, category, description, amount, created_at, created_by, last_updated_at, last_updated_by`

func loadExpenseEntries(ctx context.Context, q querier, eventID string) ([]domain.ExpenseEntry, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense_entries WHERE event_id = $1 ORDER BY created_at;`
	rows, err := q.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for event %s: %w", eventID, err)
	}
	defer rows.Close()

	entries := []models.ExpenseEntry{}
	for rows.Next() {
		var e models.ExpenseEntry
		if err := rows.Scan(
			&e.ExpenseID,
			&e.EventID,
			&e.Category,
			&e.Description,
			&e.Amount,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row for event %s: %w", eventID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows for event %s: %w", eventID, err)
	}
	return mapping.ToDomainExpenseEntrySlice(entries), nil
}
