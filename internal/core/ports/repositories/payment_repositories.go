package repositories

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// PaymentReader defines read operations for the payment ledger.
type PaymentReader interface {
	// FindPaymentByID retrieves a single payment entry.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentEntry, error)

	// FindPaymentsByEventID retrieves an event's payment ledger ordered by
	// creation time.
	FindPaymentsByEventID(ctx context.Context, eventID string) ([]domain.PaymentEntry, error)
}

// PaymentWriter defines write operations for the payment ledger. Both write
// methods lock the event row, recompute the committed payment sum inside the
// same transaction (excluding the edited entry on update), re-check the
// negotiated-total ceiling against that fresh sum, and only then write.
type PaymentWriter interface {
	// SavePaymentEntry inserts a new payment entry under the ceiling check.
	SavePaymentEntry(ctx context.Context, entry domain.PaymentEntry) error

	// UpdatePaymentEntry updates an existing entry under the ceiling check.
	UpdatePaymentEntry(ctx context.Context, entry domain.PaymentEntry) error

	// DeletePaymentEntry removes an entry. Deletion only frees headroom, so
	// no ceiling check is needed.
	DeletePaymentEntry(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-ledger repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
