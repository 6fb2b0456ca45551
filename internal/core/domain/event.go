package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus is the lifecycle state of a booking.
type EventStatus string

const (
	StatusPropuesta         EventStatus = "PROPUESTA"
	StatusNegociacion       EventStatus = "NEGOCIACION"
	StatusContratada        EventStatus = "CONTRATADA"
	StatusPendienteAnticipo EventStatus = "PENDIENTE_ANTICIPO"
	StatusConfirmada        EventStatus = "CONFIRMADA"
	StatusEjecutada         EventStatus = "EJECUTADA"
	StatusCerrada           EventStatus = "CERRADA"
	StatusCancelada         EventStatus = "CANCELADA"
)

// KnownStatuses lists every valid lifecycle state, in progression order.
var KnownStatuses = []EventStatus{
	StatusPropuesta,
	StatusNegociacion,
	StatusContratada,
	StatusPendienteAnticipo,
	StatusConfirmada,
	StatusEjecutada,
	StatusCerrada,
	StatusCancelada,
}

// IsValidStatus reports whether s is one of the known lifecycle states.
func IsValidStatus(s EventStatus) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Event represents a single booking negotiation ("fecha") for an artist.
// NegotiatedTotal is the ceiling for the payment ledger; AdvanceAmount and
// SecondPaymentAmount record the expected tranche split and are informational.
type Event struct {
	EventID             string          `json:"eventID"` // Primary key (UUID)
	Name                string          `json:"name"`
	Venue               string          `json:"venue"`
	City                string          `json:"city"`
	EventDate           time.Time       `json:"eventDate"`
	ArtistID            string          `json:"artistID"`   // FK -> Artist
	PromoterID          string          `json:"promoterID"` // FK -> Promoter
	Status              EventStatus     `json:"status"`
	NegotiatedTotal     decimal.Decimal `json:"negotiatedTotal"`
	AdvanceAmount       decimal.Decimal `json:"advanceAmount"`
	SecondPaymentAmount decimal.Decimal `json:"secondPaymentAmount"`
	Notes               string          `json:"notes"`
	AuditFields

	// Ledgers, loaded with the event. Deleted with it (cascade).
	Payments []PaymentEntry `json:"payments,omitempty"`
	Expenses []ExpenseEntry `json:"expenses,omitempty"`
}

// StatusMeta describes how a lifecycle state is presented in selection
// controls: its display color and the states reachable from it. It is a UI
// hint only; ValidateTransition remains the authoritative check.
type StatusMeta struct {
	Status EventStatus   `json:"status"`
	Color  string        `json:"color"`
	Next   []EventStatus `json:"next"`
}

var statusColors = map[EventStatus]string{
	StatusPropuesta:         "gray",
	StatusNegociacion:       "blue",
	StatusContratada:        "indigo",
	StatusPendienteAnticipo: "amber",
	StatusConfirmada:        "green",
	StatusEjecutada:         "teal",
	StatusCerrada:           "slate",
	StatusCancelada:         "red",
}

// MetaForStatus returns the display metadata for a lifecycle state.
func MetaForStatus(s EventStatus) StatusMeta {
	return StatusMeta{
		Status: s,
		Color:  statusColors[s],
		Next:   NextStatuses(s),
	}
}
