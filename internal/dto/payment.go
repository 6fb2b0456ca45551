package dto

import (
	"time"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the payload for registering a payment.
type CreatePaymentRequest struct {
	Type        string          `json:"type" binding:"required,oneof=ANTICIPO SEGUNDO"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate *time.Time      `json:"paymentDate"`
	Method      string          `json:"method" binding:"required,oneof=TRANSFERENCIA EFECTIVO CHEQUE OTRO"`
	Note        string          `json:"note"`
}

// UpdatePaymentRequest defines the fields editable on a payment entry.
type UpdatePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *time.Time       `json:"paymentDate"`
	Method      *string          `json:"method" binding:"omitempty,oneof=TRANSFERENCIA EFECTIVO CHEQUE OTRO"`
	Note        *string          `json:"note"`
}

// PaymentResponse defines the data returned for a payment entry.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	EventID     string          `json:"eventID"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
	Method      string          `json:"method"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListPaymentsResponse wraps an event's payment ledger with its totals.
type ListPaymentsResponse struct {
	Payments        []PaymentResponse `json:"payments"`
	TotalPayments   decimal.Decimal   `json:"totalPayments"`
	NegotiatedTotal decimal.Decimal   `json:"negotiatedTotal"`
	Outstanding     decimal.Decimal   `json:"outstanding"`
}

// ToPaymentResponse converts a domain.PaymentEntry to its DTO.
func ToPaymentResponse(p *domain.PaymentEntry) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		EventID:     p.EventID,
		Type:        string(p.Type),
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      string(p.Method),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of payment entries.
func ToPaymentResponses(ps []domain.PaymentEntry) []PaymentResponse {
	out := make([]PaymentResponse, len(ps))
	for i := range ps {
		out[i] = ToPaymentResponse(&ps[i])
	}
	return out
}
