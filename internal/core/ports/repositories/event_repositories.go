package repositories

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// EventReader defines read operations for event data.
type EventReader interface {
	// FindEventByID retrieves an event with its payment and expense ledgers
	// loaded.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves a filtered, token-paginated list of events
	// (ledgers not loaded). It returns the events, a token for the next
	// page, and an error.
	ListEvents(ctx context.Context, params dto.ListEventsParams) ([]domain.Event, *string, error)
}

// EventWriter defines write operations for event data.
type EventWriter interface {
	// SaveEvent inserts a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEvent updates the editable fields of an event (not its status).
	UpdateEvent(ctx context.Context, event domain.Event) error

	// ChangeEventStatus moves the event to a new status. It locks the event
	// row, recomputes the payment aggregate from the committed ledger inside
	// the same transaction, re-runs the lifecycle validation against those
	// fresh sums, and only then writes the status.
	ChangeEventStatus(ctx context.Context, eventID string, toStatus domain.EventStatus, updatedByUserID string) (*domain.Event, error)

	// DeleteEvent removes an event and, by cascade, its ledgers.
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventRepositoryFacade combines all event-related repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
