package repositories

import (
	"context"
	"time"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// ReportingRepositoryFacade defines the aggregate reads behind the dashboard
// and the financial report. All methods are read-only.
type ReportingRepositoryFacade interface {
	// GetStatusCounts returns the number of events per lifecycle state.
	GetStatusCounts(ctx context.Context) ([]domain.StatusCount, error)

	// GetUpcomingEvents returns the next scheduled, non-terminal events.
	GetUpcomingEvents(ctx context.Context, limit int) ([]domain.UpcomingEvent, error)

	// GetFinanceTotals returns money aggregates across non-cancelled events.
	GetFinanceTotals(ctx context.Context) (*domain.FinanceTotals, error)

	// ListEventFinanceSummaries returns per-event financial rows, optionally
	// windowed by event date.
	ListEventFinanceSummaries(ctx context.Context, fromDate, toDate *time.Time) ([]domain.EventFinanceSummary, error)
}
