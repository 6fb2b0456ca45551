package services

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// EventReaderSvc defines read operations for events.
type EventReaderSvc interface {
	// GetEventByID retrieves an event with its ledgers loaded.
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves a filtered, paginated event listing.
	ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error)

	// GetStatusOptions returns the UI hint for the status selection control:
	// the current status and the reachable next states with display colors.
	GetStatusOptions(ctx context.Context, eventID string) (*dto.StatusOptionsResponse, error)
}

// EventWriterSvc defines write operations for events.
type EventWriterSvc interface {
	// CreateEvent registers a new booking in PROPUESTA.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error)

	// UpdateEvent edits the non-status fields of an event.
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, requestingUserID string) (*domain.Event, error)

	// ChangeStatus runs the lifecycle validation and, if the transition is
	// legal, persists the new status. Rejections surface as
	// domain.ErrInvalidTransition, domain.ErrInsufficientAdvance or
	// domain.ErrIncompletePayment.
	ChangeStatus(ctx context.Context, eventID string, toStatus domain.EventStatus, requestingUserID string) (*domain.Event, error)

	// DeleteEvent removes an event and its ledgers.
	DeleteEvent(ctx context.Context, eventID string, requestingUserID string) error
}

// EventSvcFacade combines all event-related service interfaces.
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
