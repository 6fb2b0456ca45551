package services

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/dto"
)

// ReportingSvcFacade defines the dashboard and export operations.
type ReportingSvcFacade interface {
	// GetDashboard aggregates the landing-page KPIs: counts per status,
	// upcoming events and finance totals.
	GetDashboard(ctx context.Context, upcomingLimit int) (*dto.DashboardResponse, error)

	// GetFinanceReport lists per-event finance summaries for the given
	// filters.
	GetFinanceReport(ctx context.Context, params dto.FinanceReportParams) (*dto.FinanceReportResponse, error)

	// ExportEventsCSV writes the filtered finance report as CSV.
	ExportEventsCSV(ctx context.Context, params dto.FinanceReportParams) ([]byte, error)
}
