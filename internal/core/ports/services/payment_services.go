package services

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// PaymentSvcFacade defines operations on an event's payment ledger. Writes
// are guarded by the negotiated-total ceiling; rejections surface as
// domain.ErrExceedsNegotiatedTotal.
type PaymentSvcFacade interface {
	// RecordPayment validates and registers a payment against an event.
	RecordPayment(ctx context.Context, eventID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.PaymentEntry, error)

	// UpdatePayment validates and applies changes to an existing entry. The
	// ceiling check excludes the entry's previous amount.
	UpdatePayment(ctx context.Context, eventID string, paymentID string, req dto.UpdatePaymentRequest, requestingUserID string) (*domain.PaymentEntry, error)

	// ListPayments returns an event's ledger with its totals.
	ListPayments(ctx context.Context, eventID string) (*dto.ListPaymentsResponse, error)

	// DeletePayment removes an entry, freeing ledger headroom.
	DeletePayment(ctx context.Context, eventID string, paymentID string, requestingUserID string) error
}
