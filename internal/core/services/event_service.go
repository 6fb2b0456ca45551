package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fechasapp/fechas_backend/internal/apperrors"
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	portsrepo "github.com/fechasapp/fechas_backend/internal/core/ports/repositories"
	portssvc "github.com/fechasapp/fechas_backend/internal/core/ports/services"
	"github.com/fechasapp/fechas_backend/internal/dto"
	"github.com/fechasapp/fechas_backend/internal/middleware"
)

// eventService provides booking lifecycle and CRUD operations.
type eventService struct {
	BaseService
	eventRepo    portsrepo.EventRepositoryFacade
	artistRepo   portsrepo.ArtistRepositoryFacade
	promoterRepo portsrepo.PromoterRepositoryFacade
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, artistRepo portsrepo.ArtistRepositoryFacade, promoterRepo portsrepo.PromoterRepositoryFacade) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo:    eventRepo,
		artistRepo:   artistRepo,
		promoterRepo: promoterRepo,
	}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// CreateEvent registers a new booking. Every booking starts in PROPUESTA.
func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.NegotiatedTotal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: negotiated total must be positive", apperrors.ErrValidation)
	}
	if req.AdvanceAmount.IsNegative() || req.SecondPaymentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: expected amounts must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.artistRepo.FindArtistByID(ctx, req.ArtistID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: artist %s", apperrors.ErrValidation, req.ArtistID)
		}
		return nil, err
	}
	if _, err := s.promoterRepo.FindPromoterByID(ctx, req.PromoterID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: promoter %s", apperrors.ErrValidation, req.PromoterID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	event := domain.Event{
		EventID:             uuid.NewString(),
		Name:                req.Name,
		Venue:               req.Venue,
		City:                req.City,
		EventDate:           req.EventDate,
		ArtistID:            req.ArtistID,
		PromoterID:          req.PromoterID,
		Status:              domain.StatusPropuesta,
		NegotiatedTotal:     req.NegotiatedTotal,
		AdvanceAmount:       req.AdvanceAmount,
		SecondPaymentAmount: req.SecondPaymentAmount,
		Notes:               req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("Failed to save event", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	logger.Info("Event created", slog.String("event_id", event.EventID), slog.String("status", string(event.Status)))
	return &event, nil
}

// GetEventByID retrieves an event with its ledgers loaded.
func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	return event, nil
}

// ListEvents retrieves a filtered, paginated listing.
func (s *eventService) ListEvents(ctx context.Context, params dto.ListEventsParams) (*dto.ListEventsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.Status != "" && !domain.IsValidStatus(domain.EventStatus(params.Status)) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}
	if params.Limit <= 0 {
		params.Limit = 20
	}

	events, nextToken, err := s.eventRepo.ListEvents(ctx, params)
	if err != nil {
		logger.Error("Failed to list events", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	resp := dto.ListEventsResponse{
		Events:    make([]dto.EventResponse, len(events)),
		NextToken: nextToken,
	}
	for i := range events {
		resp.Events[i] = dto.ToEventResponse(&events[i])
	}
	return &resp, nil
}

// UpdateEvent edits the non-status fields of an event.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, requestingUserID string) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.City != nil {
		event.City = *req.City
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.NegotiatedTotal != nil {
		if req.NegotiatedTotal.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: negotiated total must be positive", apperrors.ErrValidation)
		}
		// Fast rejection against the loaded snapshot; the repository
		// re-checks against the committed ledger under the event row lock.
		agg := domain.AggregatePayments(event.Payments)
		if err := domain.ValidateCeilingChange(*req.NegotiatedTotal, agg.Total); err != nil {
			return nil, err
		}
		event.NegotiatedTotal = *req.NegotiatedTotal
	}
	if req.AdvanceAmount != nil {
		if req.AdvanceAmount.IsNegative() {
			return nil, fmt.Errorf("%w: advance amount must not be negative", apperrors.ErrValidation)
		}
		event.AdvanceAmount = *req.AdvanceAmount
	}
	if req.SecondPaymentAmount != nil {
		if req.SecondPaymentAmount.IsNegative() {
			return nil, fmt.Errorf("%w: second payment amount must not be negative", apperrors.ErrValidation)
		}
		event.SecondPaymentAmount = *req.SecondPaymentAmount
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	event.LastUpdatedAt = time.Now().UTC()
	event.LastUpdatedBy = requestingUserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		logger.Error("Failed to update event", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update event %s: %w", eventID, err)
	}

	logger.Info("Event updated", slog.String("event_id", eventID))
	return event, nil
}

// ChangeStatus moves an event through its lifecycle. The transition is
// validated twice: here against the loaded snapshot for a fast rejection, and
// again inside the repository transaction against freshly recomputed ledger
// sums, so a concurrent payment edit cannot slip a stale total past the
// CONFIRMADA or CERRADA guards.
func (s *eventService) ChangeStatus(ctx context.Context, eventID string, toStatus domain.EventStatus, requestingUserID string) (*domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.IsValidStatus(toStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, toStatus)
	}

	event, err := s.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	agg := domain.AggregatePayments(event.Payments)
	if err := domain.ValidateTransition(event, toStatus, agg); err != nil {
		logger.Warn("Status change rejected",
			slog.String("event_id", eventID),
			slog.String("from", string(event.Status)),
			slog.String("to", string(toStatus)),
			slog.String("error", err.Error()))
		return nil, err
	}

	updated, err := s.eventRepo.ChangeEventStatus(ctx, eventID, toStatus, requestingUserID)
	if err != nil {
		return nil, err
	}

	logger.Info("Event status changed",
		slog.String("event_id", eventID),
		slog.String("from", string(event.Status)),
		slog.String("to", string(toStatus)))
	return updated, nil
}

// GetStatusOptions returns the current status and its reachable successors
// with display colors. This is a hint for clients; ChangeStatus remains
// authoritative.
func (s *eventService) GetStatusOptions(ctx context.Context, eventID string) (*dto.StatusOptionsResponse, error) {
	event, err := s.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	next := domain.NextStatuses(event.Status)
	options := make([]domain.StatusMeta, len(next))
	for i, st := range next {
		options[i] = domain.MetaForStatus(st)
	}
	return &dto.StatusOptionsResponse{
		Current: domain.MetaForStatus(event.Status),
		Options: options,
	}, nil
}

// DeleteEvent removes an event and its ledgers.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetEventByID(ctx, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		logger.Error("Failed to delete event", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}

	logger.Info("Event deleted", slog.String("event_id", eventID), slog.String("deleted_by", requestingUserID))
	return nil
}
