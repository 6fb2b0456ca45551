package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus mirrors domain.EventStatus for storage.
type EventStatus string

// Event maps to the events table.
type Event struct {
	EventID             string          `json:"eventID"`
	Name                string          `json:"name"`
	Venue               string          `json:"venue"`
	City                string          `json:"city"`
	EventDate           time.Time       `json:"eventDate"`
	ArtistID            string          `json:"artistID"`
	PromoterID          string          `json:"promoterID"`
	Status              EventStatus     `json:"status"`
	NegotiatedTotal     decimal.Decimal `json:"negotiatedTotal"`
	AdvanceAmount       decimal.Decimal `json:"advanceAmount"`
	SecondPaymentAmount decimal.Decimal `json:"secondPaymentAmount"`
	Notes               string          `json:"notes"`
	AuditFields
}
