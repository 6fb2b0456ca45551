package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType mirrors domain.PaymentType for storage.
type PaymentType string

// PaymentMethod mirrors domain.PaymentMethod for storage.
type PaymentMethod string

// PaymentEntry maps to the payment_entries table.
type PaymentEntry struct {
	PaymentID   string          `json:"paymentID"`
	EventID     string          `json:"eventID"`
	Type        PaymentType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *time.Time      `json:"paymentDate"`
	Method      PaymentMethod   `json:"method"`
	Note        string          `json:"note"`
	AuditFields
}
