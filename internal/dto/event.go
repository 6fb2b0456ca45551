package dto

import (
	"time"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEventRequest defines the payload for creating a booking.
type CreateEventRequest struct {
	Name                string          `json:"name" binding:"required"`
	Venue               string          `json:"venue" binding:"required"`
	City                string          `json:"city"`
	EventDate           time.Time       `json:"eventDate" binding:"required"`
	ArtistID            string          `json:"artistID" binding:"required,uuid"`
	PromoterID          string          `json:"promoterID" binding:"required,uuid"`
	NegotiatedTotal     decimal.Decimal `json:"negotiatedTotal" binding:"required"`
	AdvanceAmount       decimal.Decimal `json:"advanceAmount"`
	SecondPaymentAmount decimal.Decimal `json:"secondPaymentAmount"`
	Notes               string          `json:"notes"`
}

// UpdateEventRequest defines the fields editable after creation. Pointers
// distinguish omitted fields from zero values. Status is not editable here;
// it only moves through the status-change endpoint.
type UpdateEventRequest struct {
	Name                *string          `json:"name"`
	Venue               *string          `json:"venue"`
	City                *string          `json:"city"`
	EventDate           *time.Time       `json:"eventDate"`
	NegotiatedTotal     *decimal.Decimal `json:"negotiatedTotal"`
	AdvanceAmount       *decimal.Decimal `json:"advanceAmount"`
	SecondPaymentAmount *decimal.Decimal `json:"secondPaymentAmount"`
	Notes               *string          `json:"notes"`
}

// ChangeStatusRequest asks the lifecycle engine to move an event to a new status.
type ChangeStatusRequest struct {
	ToStatus string `json:"toStatus" binding:"required"`
}

// ListEventsParams defines the filters for the events listing.
type ListEventsParams struct {
	Status     string     `form:"status"`
	ArtistID   string     `form:"artistID"`
	PromoterID string     `form:"promoterID"`
	FromDate   *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate     *time.Time `form:"toDate" time_format:"2006-01-02"`
	Search     string     `form:"search"`
	Limit      int        `form:"limit,default=20"`
	NextToken  *string    `form:"nextToken"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID             string          `json:"eventID"`
	Name                string          `json:"name"`
	Venue               string          `json:"venue"`
	City                string          `json:"city"`
	EventDate           time.Time       `json:"eventDate"`
	ArtistID            string          `json:"artistID"`
	PromoterID          string          `json:"promoterID"`
	Status              string          `json:"status"`
	NegotiatedTotal     decimal.Decimal `json:"negotiatedTotal"`
	AdvanceAmount       decimal.Decimal `json:"advanceAmount"`
	SecondPaymentAmount decimal.Decimal `json:"secondPaymentAmount"`
	TotalPayments       decimal.Decimal `json:"totalPayments"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	Notes               string          `json:"notes"`
	CreatedAt           time.Time       `json:"createdAt"`

	Payments []PaymentResponse `json:"payments,omitempty"`
	Expenses []ExpenseResponse `json:"expenses,omitempty"`
}

// ListEventsResponse wraps a page of events with the next-page cursor.
type ListEventsResponse struct {
	Events    []EventResponse `json:"events"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// StatusOptionsResponse is the UI hint for the status selection control.
// The server-side lifecycle validation remains authoritative.
type StatusOptionsResponse struct {
	Current domain.StatusMeta   `json:"current"`
	Options []domain.StatusMeta `json:"options"`
}

// ToEventResponse converts a domain.Event (with loaded ledgers) to its DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	agg := domain.AggregatePayments(e.Payments)
	totalExpenses := decimal.Zero
	for _, exp := range e.Expenses {
		totalExpenses = totalExpenses.Add(exp.Amount)
	}

	resp := EventResponse{
		EventID:             e.EventID,
		Name:                e.Name,
		Venue:               e.Venue,
		City:                e.City,
		EventDate:           e.EventDate,
		ArtistID:            e.ArtistID,
		PromoterID:          e.PromoterID,
		Status:              string(e.Status),
		NegotiatedTotal:     e.NegotiatedTotal,
		AdvanceAmount:       e.AdvanceAmount,
		SecondPaymentAmount: e.SecondPaymentAmount,
		TotalPayments:       agg.Total,
		TotalExpenses:       totalExpenses,
		Notes:               e.Notes,
		CreatedAt:           e.CreatedAt,
	}
	if len(e.Payments) > 0 {
		resp.Payments = ToPaymentResponses(e.Payments)
	}
	if len(e.Expenses) > 0 {
		resp.Expenses = ToExpenseResponses(e.Expenses)
	}
	return resp
}
