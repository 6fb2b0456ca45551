package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when the requested edge is not in the
	// allowed-transition table.
	ErrInvalidTransition = errors.New("status transition not allowed")

	// ErrInsufficientAdvance is returned when confirming an event whose
	// registered advance payments do not cover the expected advance.
	ErrInsufficientAdvance = errors.New("registered advance does not cover the expected advance")

	// ErrIncompletePayment is returned when closing an event whose payments
	// do not cover the negotiated total.
	ErrIncompletePayment = errors.New("payments do not cover the negotiated total")
)

// AllowedTransitions defines the valid lifecycle edges. The key is the
// current status, the value the set of reachable statuses. Terminal states
// map to an empty slice. Any pair not listed here is illegal.
var AllowedTransitions = map[EventStatus][]EventStatus{
	StatusPropuesta:         {StatusNegociacion, StatusCancelada},
	StatusNegociacion:       {StatusContratada, StatusCancelada},
	StatusContratada:        {StatusPendienteAnticipo, StatusCancelada},
	StatusPendienteAnticipo: {StatusConfirmada, StatusCancelada},
	StatusConfirmada:        {StatusEjecutada, StatusCancelada},
	StatusEjecutada:         {StatusCerrada},
	StatusCerrada:           {},
	StatusCancelada:         {},
}

// CanTransition reports whether the edge from -> to is in the table.
// It says nothing about the monetary guards on CONFIRMADA and CERRADA.
func CanTransition(from, to EventStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the given one.
// Terminal states return an empty slice.
func NextStatuses(from EventStatus) []EventStatus {
	allowed := AllowedTransitions[from]
	out := make([]EventStatus, len(allowed))
	copy(out, allowed)
	return out
}

// ValidateTransition decides whether the event may move to the requested
// status, given its current status and the supplied payment aggregate. The
// aggregate must reflect the event's committed ledger at validation time;
// callers performing a write must recompute it inside the same transaction.
//
// Beyond table membership, two edges carry guards:
//   - -> CONFIRMADA requires registered ANTICIPO payments to be positive and
//     to cover the event's expected advance amount.
//   - -> CERRADA requires total payments >= the negotiated total.
//
// On success the caller persists the new status; there are no side effects
// here.
func ValidateTransition(event *Event, to EventStatus, agg PaymentAggregate) error {
	if !CanTransition(event.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, event.Status, to)
	}

	switch to {
	case StatusConfirmada:
		anticipo := agg.ByType[PaymentAnticipo]
		if anticipo.IsZero() || anticipo.IsNegative() {
			return fmt.Errorf("%w: no advance payments registered", ErrInsufficientAdvance)
		}
		if anticipo.LessThan(event.AdvanceAmount) {
			return fmt.Errorf("%w: registered %s of expected %s",
				ErrInsufficientAdvance, anticipo.String(), event.AdvanceAmount.String())
		}
	case StatusCerrada:
		if agg.Total.LessThan(event.NegotiatedTotal) {
			return fmt.Errorf("%w: collected %s of %s",
				ErrIncompletePayment, agg.Total.String(), event.NegotiatedTotal.String())
		}
	}

	return nil
}
