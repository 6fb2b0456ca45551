package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes the advance tranche from the second/final tranche.
type PaymentType string

const (
	PaymentAnticipo PaymentType = "ANTICIPO"
	PaymentSegundo  PaymentType = "SEGUNDO"
)

// PaymentMethod is how a payment was received.
type PaymentMethod string

const (
	MethodTransferencia PaymentMethod = "TRANSFERENCIA"
	MethodEfectivo      PaymentMethod = "EFECTIVO"
	MethodCheque        PaymentMethod = "CHEQUE"
	MethodOtro          PaymentMethod = "OTRO"
)

// PaymentEntry is one received-payment line item against an event.
// The sum of all entries for an event must never exceed the event's
// negotiated total (enforced by the ledger guard).
type PaymentEntry struct {
	PaymentID   string          `json:"paymentID"` // Primary key (UUID)
	EventID     string          `json:"eventID"`   // FK -> Event (Not Null)
	Type        PaymentType     `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // Positive value
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
	Method      PaymentMethod   `json:"method"`
	Note        string          `json:"note"`
	AuditFields
}
