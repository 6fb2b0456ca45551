package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCountResponse is one dashboard slice: how many events sit in a status.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// UpcomingEventResponse is a dashboard row for the next confirmed dates.
type UpcomingEventResponse struct {
	EventID    string    `json:"eventID"`
	Name       string    `json:"name"`
	Venue      string    `json:"venue"`
	EventDate  time.Time `json:"eventDate"`
	Status     string    `json:"status"`
	ArtistName string    `json:"artistName"`
}

// DashboardResponse aggregates the KPIs shown on the landing page.
type DashboardResponse struct {
	StatusCounts     []StatusCountResponse   `json:"statusCounts"`
	UpcomingEvents   []UpcomingEventResponse `json:"upcomingEvents"`
	TotalNegotiated  decimal.Decimal         `json:"totalNegotiated"`
	TotalCollected   decimal.Decimal         `json:"totalCollected"`
	TotalOutstanding decimal.Decimal         `json:"totalOutstanding"`
	TotalExpenses    decimal.Decimal         `json:"totalExpenses"`
}

// EventFinanceSummaryResponse is one row of the per-event financial report
// and of the CSV export.
type EventFinanceSummaryResponse struct {
	EventID         string          `json:"eventID"`
	Name            string          `json:"name"`
	EventDate       time.Time       `json:"eventDate"`
	Status          string          `json:"status"`
	ArtistName      string          `json:"artistName"`
	PromoterName    string          `json:"promoterName"`
	NegotiatedTotal decimal.Decimal `json:"negotiatedTotal"`
	TotalPayments   decimal.Decimal `json:"totalPayments"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	Profit          decimal.Decimal `json:"profit"`
}

// FinanceReportResponse wraps the per-event financial summaries.
type FinanceReportResponse struct {
	FromDate *time.Time                    `json:"fromDate,omitempty"`
	ToDate   *time.Time                    `json:"toDate,omitempty"`
	Rows     []EventFinanceSummaryResponse `json:"rows"`
}

// FinanceReportParams defines the query window for the financial report.
type FinanceReportParams struct {
	FromDate *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate   *time.Time `form:"toDate" time_format:"2006-01-02"`
}
