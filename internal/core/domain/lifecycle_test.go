package domain_test

import (
	"testing"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventWith(status domain.EventStatus, negotiated, advance int64, payments ...domain.PaymentEntry) *domain.Event {
	return &domain.Event{
		EventID:         "evt-1",
		Status:          status,
		NegotiatedTotal: decimal.NewFromInt(negotiated),
		AdvanceAmount:   decimal.NewFromInt(advance),
		Payments:        payments,
	}
}

func payment(t domain.PaymentType, amount int64) domain.PaymentEntry {
	return domain.PaymentEntry{
		PaymentID: "pay-" + string(t),
		Type:      t,
		Amount:    decimal.NewFromInt(amount),
	}
}

// Every (from, to) pair must be accepted iff the edge is in the table. Guards
// are neutralized by fully funding the event so only table membership decides.
func TestValidateTransition_TableClosure(t *testing.T) {
	for _, from := range domain.KnownStatuses {
		for _, to := range domain.KnownStatuses {
			event := eventWith(from, 10_000_000, 2_000_000,
				payment(domain.PaymentAnticipo, 2_000_000),
				payment(domain.PaymentSegundo, 8_000_000),
			)
			agg := domain.AggregatePayments(event.Payments)
			err := domain.ValidateTransition(event, to, agg)

			if domain.CanTransition(from, to) {
				assert.NoError(t, err, "%s -> %s should be accepted", from, to)
			} else {
				require.Error(t, err, "%s -> %s should be rejected", from, to)
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			}
		}
	}
}

func TestValidateTransition_TerminalStatesHaveNoSuccessors(t *testing.T) {
	for _, terminal := range []domain.EventStatus{domain.StatusCerrada, domain.StatusCancelada} {
		assert.Empty(t, domain.NextStatuses(terminal))
		for _, to := range domain.KnownStatuses {
			event := eventWith(terminal, 10_000_000, 0)
			err := domain.ValidateTransition(event, to, domain.AggregatePayments(nil))
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", terminal, to)
		}
	}
}

func TestValidateTransition_ConfirmadaGuard(t *testing.T) {
	tests := []struct {
		name     string
		payments []domain.PaymentEntry
		advance  int64
		wantErr  error
	}{
		{
			name:    "no advance registered",
			advance: 5_000_000,
			wantErr: domain.ErrInsufficientAdvance,
		},
		{
			name:     "advance below expected",
			advance:  5_000_000,
			payments: []domain.PaymentEntry{payment(domain.PaymentAnticipo, 4_999_999)},
			wantErr:  domain.ErrInsufficientAdvance,
		},
		{
			name:     "second payment does not count as advance",
			advance:  5_000_000,
			payments: []domain.PaymentEntry{payment(domain.PaymentSegundo, 5_000_000)},
			wantErr:  domain.ErrInsufficientAdvance,
		},
		{
			name:     "advance covers expected exactly",
			advance:  5_000_000,
			payments: []domain.PaymentEntry{payment(domain.PaymentAnticipo, 5_000_000)},
		},
		{
			name:    "zero expected advance still requires a positive advance",
			advance: 0,
			wantErr: domain.ErrInsufficientAdvance,
		},
		{
			name:     "zero expected advance accepts any positive advance",
			advance:  0,
			payments: []domain.PaymentEntry{payment(domain.PaymentAnticipo, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := eventWith(domain.StatusPendienteAnticipo, 15_000_000, tt.advance, tt.payments...)
			err := domain.ValidateTransition(event, domain.StatusConfirmada, domain.AggregatePayments(event.Payments))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTransition_CerradaGuard(t *testing.T) {
	tests := []struct {
		name      string
		collected int64
		wantErr   error
	}{
		{name: "nothing collected", collected: 0, wantErr: domain.ErrIncompletePayment},
		{name: "one short of the total", collected: 29_999_999, wantErr: domain.ErrIncompletePayment},
		{name: "total covered exactly", collected: 30_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payments []domain.PaymentEntry
			if tt.collected > 0 {
				payments = append(payments, payment(domain.PaymentAnticipo, tt.collected))
			}
			event := eventWith(domain.StatusEjecutada, 30_000_000, 0, payments...)
			err := domain.ValidateTransition(event, domain.StatusCerrada, domain.AggregatePayments(event.Payments))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Contratada is not directly connected to Cerrada; the request must fail on
// table membership before any guard runs.
func TestValidateTransition_NoShortcutToCerrada(t *testing.T) {
	event := eventWith(domain.StatusContratada, 20_000_000, 0,
		payment(domain.PaymentAnticipo, 20_000_000))
	err := domain.ValidateTransition(event, domain.StatusCerrada, domain.AggregatePayments(event.Payments))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestMetaForStatus_MatchesTransitionTable(t *testing.T) {
	for _, s := range domain.KnownStatuses {
		meta := domain.MetaForStatus(s)
		assert.Equal(t, s, meta.Status)
		assert.NotEmpty(t, meta.Color)
		assert.Equal(t, domain.NextStatuses(s), meta.Next)
	}
}
