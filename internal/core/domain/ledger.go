package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrExceedsNegotiatedTotal is returned when a payment insert or update
// would push the event's payment ledger over its negotiated total.
var ErrExceedsNegotiatedTotal = errors.New("payment would exceed the negotiated total")

// PaymentAggregate summarizes an event's payment ledger.
type PaymentAggregate struct {
	Total  decimal.Decimal
	ByType map[PaymentType]decimal.Decimal
}

// AggregatePayments computes the payment totals for an event from its
// loaded ledger entries. Pure read; the lifecycle guards consume it.
func AggregatePayments(payments []PaymentEntry) PaymentAggregate {
	agg := PaymentAggregate{
		Total:  decimal.Zero,
		ByType: make(map[PaymentType]decimal.Decimal, 2),
	}
	for _, p := range payments {
		agg.Total = agg.Total.Add(p.Amount)
		agg.ByType[p.Type] = agg.ByType[p.Type].Add(p.Amount)
	}
	return agg
}

// ValidatePaymentInsert checks that adding a new entry of the given amount
// keeps the ledger within the negotiated total. currentTotal must be the
// committed sum of the event's payments at validation time.
func ValidatePaymentInsert(negotiatedTotal, currentTotal, amount decimal.Decimal) error {
	projected := currentTotal.Add(amount)
	if projected.GreaterThan(negotiatedTotal) {
		return fmt.Errorf("%w: projected %s over ceiling %s",
			ErrExceedsNegotiatedTotal, projected.String(), negotiatedTotal.String())
	}
	return nil
}

// ValidateCeilingChange checks that a new negotiated total still covers the
// committed payment sum. Lowering the ceiling below money already collected
// would leave the ledger over its ceiling the moment the change took effect.
func ValidateCeilingChange(newTotal, committedTotal decimal.Decimal) error {
	if newTotal.LessThan(committedTotal) {
		return fmt.Errorf("%w: negotiated total %s is below already collected %s",
			ErrExceedsNegotiatedTotal, newTotal.String(), committedTotal.String())
	}
	return nil
}

// ValidatePaymentUpdate checks that changing an existing entry from
// oldAmount to newAmount keeps the ledger within the negotiated total. The
// entry being edited is excluded from currentTotal by subtracting oldAmount.
func ValidatePaymentUpdate(negotiatedTotal, currentTotal, oldAmount, newAmount decimal.Decimal) error {
	projected := currentTotal.Sub(oldAmount).Add(newAmount)
	if projected.GreaterThan(negotiatedTotal) {
		return fmt.Errorf("%w: projected %s over ceiling %s",
			ErrExceedsNegotiatedTotal, projected.String(), negotiatedTotal.String())
	}
	return nil
}
