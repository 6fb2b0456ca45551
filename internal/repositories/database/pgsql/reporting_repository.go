package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
)

type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for aggregate reads.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// GetStatusCounts returns the number of events per lifecycle state.
func (r *reportingRepository) GetStatusCounts(ctx context.Context) ([]domain.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM events
		GROUP BY status
		ORDER BY status;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()

	counts := []domain.StatusCount{}
	for rows.Next() {
		var c domain.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status count rows: %w", err)
	}
	return counts, nil
}

// GetUpcomingEvents returns the next scheduled, non-terminal events.
func (r *reportingRepository) GetUpcomingEvents(ctx context.Context, limit int) ([]domain.UpcomingEvent, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT e.event_id, e.name, e.venue, e.event_date, e.status, a.name
		FROM events e
		JOIN artists a ON e.artist_id = a.artist_id
		WHERE e.event_date >= NOW()
		  AND e.status NOT IN ('CERRADA', 'CANCELADA')
		ORDER BY e.event_date ASC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	events := []domain.UpcomingEvent{}
	for rows.Next() {
		var u domain.UpcomingEvent
		if err := rows.Scan(&u.EventID, &u.Name, &u.Venue, &u.EventDate, &u.Status, &u.ArtistName); err != nil {
			return nil, fmt.Errorf("failed to scan upcoming event row: %w", err)
		}
		events = append(events, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating upcoming event rows: %w", err)
	}
	return events, nil
}

// GetFinanceTotals returns money aggregates across non-cancelled events.
func (r *reportingRepository) GetFinanceTotals(ctx context.Context) (*domain.FinanceTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(e.negotiated_total), 0),
			COALESCE((SELECT SUM(p.amount) FROM payment_entries p
			          JOIN events pe ON p.event_id = pe.event_id
			          WHERE pe.status != 'CANCELADA'), 0),
			COALESCE((SELECT SUM(x.amount) FROM expense_entries x
			          JOIN events xe ON x.event_id = xe.event_id
			          WHERE xe.status != 'CANCELADA'), 0)
		FROM events e
		WHERE e.status != 'CANCELADA';
	`
	var totals domain.FinanceTotals
	err := r.Pool.QueryRow(ctx, query).Scan(
		&totals.TotalNegotiated,
		&totals.TotalCollected,
		&totals.TotalExpenses,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query finance totals: %w", err)
	}
	return &totals, nil
}

// ListEventFinanceSummaries returns per-event financial rows, optionally
// windowed by event date.
func (r *reportingRepository) ListEventFinanceSummaries(ctx context.Context, fromDate, toDate *time.Time) ([]domain.EventFinanceSummary, error) {
	query := `
		SELECT e.event_id, e.name, e.event_date, e.status, a.name, pr.name,
		       e.negotiated_total,
		       COALESCE(p.total, 0) AS total_payments,
		       COALESCE(x.total, 0) AS total_expenses
		FROM events e
		JOIN artists a ON e.artist_id = a.artist_id
		JOIN promoters pr ON e.promoter_id = pr.promoter_id
		LEFT JOIN (SELECT event_id, SUM(amount) AS total FROM payment_entries GROUP BY event_id) p
		       ON p.event_id = e.event_id
		LEFT JOIN (SELECT event_id, SUM(amount) AS total FROM expense_entries GROUP BY event_id) x
		       ON x.event_id = e.event_id
		WHERE 1=1
	`
	args := []interface{}{}
	if fromDate != nil {
		args = append(args, *fromDate)
		query += ` AND e.event_date >= $` + strconv.Itoa(len(args))
	}
	if toDate != nil {
		args = append(args, *toDate)
		query += ` AND e.event_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY e.event_date DESC, e.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query finance summaries: %w", err)
	}
	defer rows.Close()

	summaries := []domain.EventFinanceSummary{}
	for rows.Next() {
		var s domain.EventFinanceSummary
		if err := rows.Scan(
			&s.EventID,
			&s.Name,
			&s.EventDate,
			&s.Status,
			&s.ArtistName,
			&s.PromoterName,
			&s.NegotiatedTotal,
			&s.TotalPayments,
			&s.TotalExpenses,
		); err != nil {
			return nil, fmt.Errorf("failed to scan finance summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating finance summary rows: %w", err)
	}
	return summaries, nil
}
