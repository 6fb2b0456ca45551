package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCount is a dashboard aggregate: events per lifecycle state.
type StatusCount struct {
	Status EventStatus
	Count  int
}

// UpcomingEvent is a dashboard read model for the next scheduled dates.
type UpcomingEvent struct {
	EventID    string
	Name       string
	Venue      string
	EventDate  time.Time
	Status     EventStatus
	ArtistName string
}

// FinanceTotals aggregates money across all non-cancelled events.
type FinanceTotals struct {
	TotalNegotiated decimal.Decimal
	TotalCollected  decimal.Decimal
	TotalExpenses   decimal.Decimal
}

// EventFinanceSummary is the per-event row of the financial report:
// collected against negotiated, expenses, and the resulting profit.
type EventFinanceSummary struct {
	EventID         string
	Name            string
	EventDate       time.Time
	Status          EventStatus
	ArtistName      string
	PromoterName    string
	NegotiatedTotal decimal.Decimal
	TotalPayments   decimal.Decimal
	TotalExpenses   decimal.Decimal
}

// Outstanding is the uncollected remainder of the negotiated total.
func (s EventFinanceSummary) Outstanding() decimal.Decimal {
	return s.NegotiatedTotal.Sub(s.TotalPayments)
}

// Profit is collected payments minus registered expenses.
func (s EventFinanceSummary) Profit() decimal.Decimal {
	return s.TotalPayments.Sub(s.TotalExpenses)
}
