package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
)

// reportingService aggregates dashboard KPIs and the financial report.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboard assembles the landing-page KPIs: event counts per status, the
// next scheduled dates, and money totals across non-cancelled events.
func (s *reportingService) GetDashboard(ctx context.Context, upcomingLimit int) (*dto.DashboardResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if upcomingLimit <= 0 {
		upcomingLimit = 5
	}

	counts, err := s.reportingRepo.GetStatusCounts(ctx)
	if err != nil {
		logger.Error("Failed to get status counts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}

	upcoming, err := s.reportingRepo.GetUpcomingEvents(ctx, upcomingLimit)
	if err != nil {
		logger.Error("Failed to get upcoming events", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get upcoming events: %w", err)
	}

	totals, err := s.reportingRepo.GetFinanceTotals(ctx)
	if err != nil {
		logger.Error("Failed to get finance totals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get finance totals: %w", err)
	}

	resp := dto.DashboardResponse{
		StatusCounts:     make([]dto.StatusCountResponse, len(counts)),
		UpcomingEvents:   make([]dto.UpcomingEventResponse, len(upcoming)),
		TotalNegotiated:  totals.TotalNegotiated,
		TotalCollected:   totals.TotalCollected,
		TotalOutstanding: totals.TotalNegotiated.Sub(totals.TotalCollected),
		TotalExpenses:    totals.TotalExpenses,
	}
	for i, c := range counts {
		resp.StatusCounts[i] = dto.StatusCountResponse{Status: string(c.Status), Count: c.Count}
	}
	for i, u := range upcoming {
		resp.UpcomingEvents[i] = dto.UpcomingEventResponse{
			EventID:    u.EventID,
			Name:       u.Name,
			Venue:      u.Venue,
			EventDate:  u.EventDate,
			Status:     string(u.Status),
			ArtistName: u.ArtistName,
		}
	}
	return &resp, nil
}

// GetFinanceReport lists per-event financial rows for the given date window.
func (s *reportingService) GetFinanceReport(ctx context.Context, params dto.FinanceReportParams) (*dto.FinanceReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.FromDate != nil && params.ToDate != nil && params.ToDate.Before(*params.FromDate) {
		return nil, fmt.Errorf("%w: toDate before fromDate", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.ListEventFinanceSummaries(ctx, params.FromDate, params.ToDate)
	if err != nil {
		logger.Error("Failed to list finance summaries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list finance summaries: %w", err)
	}

	resp := dto.FinanceReportResponse{
		FromDate: params.FromDate,
		ToDate:   params.ToDate,
		Rows:     make([]dto.EventFinanceSummaryResponse, len(rows)),
	}
	for i, r := range rows {
		resp.Rows[i] = dto.EventFinanceSummaryResponse{
			EventID:         r.EventID,
			Name:            r.Name,
			EventDate:       r.EventDate,
			Status:          string(r.Status),
			ArtistName:      r.ArtistName,
			PromoterName:    r.PromoterName,
			NegotiatedTotal: r.NegotiatedTotal,
			TotalPayments:   r.TotalPayments,
			TotalExpenses:   r.TotalExpenses,
			Outstanding:     r.Outstanding(),
			Profit:          r.Profit(),
		}
	}
	return &resp, nil
}

// ExportEventsCSV renders the finance report as CSV for spreadsheet import.
func (s *reportingService) ExportEventsCSV(ctx context.Context, params dto.FinanceReportParams) ([]byte, error) {
	report, err := s.GetFinanceReport(ctx, params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"event_id", "name", "event_date", "status", "artist", "promoter", "negotiated_total", "total_payments", "total_expenses", "outstanding", "profit"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range report.Rows {
		record := []string{
			r.EventID,
			r.Name,
			r.EventDate.Format("2006-01-02"),
			r.Status,
			r.ArtistName,
			r.PromoterName,
			r.NegotiatedTotal.String(),
			r.TotalPayments.String(),
			r.TotalExpenses.String(),
			r.Outstanding.String(),
			r.Profit.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
