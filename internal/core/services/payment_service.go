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

// paymentService provides operations on the payment ledger of an event.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	eventRepo   portsrepo.EventRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		eventRepo:   eventRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment validates a new payment against the negotiated-total ceiling
// and registers it. The ceiling is checked here against the loaded ledger for
// a fast rejection, and again by the repository against a freshly recomputed
// sum inside the write transaction.
func (s *paymentService) RecordPayment(ctx context.Context, eventID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.PaymentEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	agg := domain.AggregatePayments(event.Payments)
	if err := domain.ValidatePaymentInsert(event.NegotiatedTotal, agg.Total, req.Amount); err != nil {
		logger.Warn("Payment rejected",
			slog.String("event_id", eventID),
			slog.String("amount", req.Amount.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.PaymentEntry{
		PaymentID:   uuid.NewString(),
		EventID:     eventID,
		Type:        domain.PaymentType(req.Type),
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      domain.PaymentMethod(req.Method),
		Note:        req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePaymentEntry(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrExceedsNegotiatedTotal) {
			return nil, err
		}
		logger.Error("Failed to save payment", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment recorded",
		slog.String("event_id", eventID),
		slog.String("payment_id", entry.PaymentID),
		slog.String("type", string(entry.Type)),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

// UpdatePayment applies changes to an existing entry. When the amount
// changes, the ceiling check counts the ledger without this entry's previous
// amount, so an entry can always be corrected downward.
func (s *paymentService) UpdatePayment(ctx context.Context, eventID string, paymentID string, req dto.UpdatePaymentRequest, requestingUserID string) (*domain.PaymentEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.findEntryForEvent(ctx, eventID, paymentID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
		}

		event, err := s.eventRepo.FindEventByID(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
		}
		agg := domain.AggregatePayments(event.Payments)
		if err := domain.ValidatePaymentUpdate(event.NegotiatedTotal, agg.Total, entry.Amount, *req.Amount); err != nil {
			logger.Warn("Payment update rejected",
				slog.String("payment_id", paymentID),
				slog.String("new_amount", req.Amount.String()),
				slog.String("error", err.Error()))
			return nil, err
		}
		entry.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		entry.PaymentDate = req.PaymentDate
	}
	if req.Method != nil {
		entry.Method = domain.PaymentMethod(*req.Method)
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}

	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = requestingUserID

	if err := s.paymentRepo.UpdatePaymentEntry(ctx, *entry); err != nil {
		if errors.Is(err, domain.ErrExceedsNegotiatedTotal) {
			return nil, err
		}
		logger.Error("Failed to update payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update payment %s: %w", paymentID, err)
	}

	logger.Info("Payment updated", slog.String("payment_id", paymentID))
	return entry, nil
}

// ListPayments returns an event's ledger with its running totals.
func (s *paymentService) ListPayments(ctx context.Context, eventID string) (*dto.ListPaymentsResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	agg := domain.AggregatePayments(event.Payments)
	return &dto.ListPaymentsResponse{
		Payments:        dto.ToPaymentResponses(event.Payments),
		TotalPayments:   agg.Total,
		NegotiatedTotal: event.NegotiatedTotal,
		Outstanding:     event.NegotiatedTotal.Sub(agg.Total),
	}, nil
}

// DeletePayment removes an entry. Deletion only frees headroom under the
// ceiling, so no aggregate check is needed.
func (s *paymentService) DeletePayment(ctx context.Context, eventID string, paymentID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findEntryForEvent(ctx, eventID, paymentID); err != nil {
		return err
	}
	if err := s.paymentRepo.DeletePaymentEntry(ctx, paymentID); err != nil {
		logger.Error("Failed to delete payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}

	logger.Info("Payment deleted", slog.String("payment_id", paymentID), slog.String("deleted_by", requestingUserID))
	return nil
}

// findEntryForEvent loads an entry and checks it belongs to the given event.
func (s *paymentService) findEntryForEvent(ctx context.Context, eventID, paymentID string) (*domain.PaymentEntry, error) {
	entry, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment %s not found", paymentID))
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	if entry.EventID != eventID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("payment %s not found", paymentID))
	}
	return entry, nil
}
