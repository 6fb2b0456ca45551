package domain_test

import (
	"testing"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatePayments(t *testing.T) {
	payments := []domain.PaymentEntry{
		payment(domain.PaymentAnticipo, 5_000_000),
		payment(domain.PaymentAnticipo, 1_000_000),
		payment(domain.PaymentSegundo, 4_000_000),
	}

	agg := domain.AggregatePayments(payments)

	assert.True(t, agg.Total.Equal(decimal.NewFromInt(10_000_000)))
	assert.True(t, agg.ByType[domain.PaymentAnticipo].Equal(decimal.NewFromInt(6_000_000)))
	assert.True(t, agg.ByType[domain.PaymentSegundo].Equal(decimal.NewFromInt(4_000_000)))
}

func TestAggregatePayments_EmptyLedger(t *testing.T) {
	agg := domain.AggregatePayments(nil)
	assert.True(t, agg.Total.IsZero())
	assert.True(t, agg.ByType[domain.PaymentAnticipo].IsZero())
}

func TestValidatePaymentInsert(t *testing.T) {
	ceiling := decimal.NewFromInt(15_000_000)

	tests := []struct {
		name    string
		current int64
		amount  int64
		wantErr bool
	}{
		{name: "fits under the ceiling", current: 5_000_000, amount: 9_000_000},
		{name: "reaches the ceiling exactly", current: 5_000_000, amount: 10_000_000},
		{name: "one over the ceiling", current: 5_000_000, amount: 10_000_001, wantErr: true},
		{name: "first payment over the ceiling", current: 0, amount: 15_000_001, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePaymentInsert(ceiling, decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.amount))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrExceedsNegotiatedTotal)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// The rejection carries the projected sum and the ceiling so callers can
// surface both to the user.
func TestValidatePaymentInsert_ErrorDetail(t *testing.T) {
	err := domain.ValidatePaymentInsert(
		decimal.NewFromInt(15_000_000),
		decimal.NewFromInt(5_000_000),
		decimal.NewFromInt(10_000_001),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "15000001")
	assert.Contains(t, err.Error(), "15000000")
}

func TestValidateCeilingChange(t *testing.T) {
	tests := []struct {
		name      string
		newTotal  int64
		committed int64
		wantErr   bool
	}{
		{name: "raising the ceiling", newTotal: 20_000_000, committed: 10_000_000},
		{name: "lowering to exactly the collected sum", newTotal: 10_000_000, committed: 10_000_000},
		{name: "lowering below the collected sum", newTotal: 9_999_999, committed: 10_000_000, wantErr: true},
		{name: "lowering with an empty ledger", newTotal: 1, committed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateCeilingChange(decimal.NewFromInt(tt.newTotal), decimal.NewFromInt(tt.committed))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrExceedsNegotiatedTotal)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePaymentUpdate_ExcludesSelf(t *testing.T) {
	ceiling := decimal.NewFromInt(10_000_000)
	current := decimal.NewFromInt(10_000_000) // ledger already at the ceiling

	tests := []struct {
		name      string
		oldAmount int64
		newAmount int64
		wantErr   bool
	}{
		{name: "replacing an entry with the same amount", oldAmount: 4_000_000, newAmount: 4_000_000},
		{name: "shrinking an entry", oldAmount: 4_000_000, newAmount: 1_000_000},
		{name: "growing an entry within freed headroom", oldAmount: 4_000_000, newAmount: 3_999_999},
		{name: "growing an entry past the ceiling", oldAmount: 4_000_000, newAmount: 4_000_001, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePaymentUpdate(ceiling, current,
				decimal.NewFromInt(tt.oldAmount), decimal.NewFromInt(tt.newAmount))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrExceedsNegotiatedTotal)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
