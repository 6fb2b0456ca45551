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

// expenseService provides operations on the expense ledger of an event.
// Expenses feed profitability only; they have no ceiling against the
// negotiated total.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	eventRepo   portsrepo.EventRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		eventRepo:   eventRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) RecordExpense(ctx context.Context, eventID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ExpenseEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	now := time.Now().UTC()
	entry := domain.ExpenseEntry{
		ExpenseID:   uuid.NewString(),
		EventID:     eventID,
		Category:    domain.ExpenseCategory(req.Category),
		Description: req.Description,
		Amount:      req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpenseEntry(ctx, entry); err != nil {
		logger.Error("Failed to save expense", slog.String("event_id", eventID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense recorded",
		slog.String("event_id", eventID),
		slog.String("expense_id", entry.ExpenseID),
		slog.String("category", string(entry.Category)),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, eventID string, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.ExpenseEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.findEntryForEvent(ctx, eventID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.Category != nil {
		entry.Category = domain.ExpenseCategory(*req.Category)
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpenseEntry(ctx, *entry); err != nil {
		logger.Error("Failed to update expense", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	logger.Info("Expense updated", slog.String("expense_id", expenseID))
	return entry, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, eventID string) (*dto.ListExpensesResponse, error) {
	if _, err := s.eventRepo.FindEventByID(ctx, eventID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}

	expenses, err := s.expenseRepo.FindExpensesByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for event %s: %w", eventID, err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return &dto.ListExpensesResponse{
		Expenses:      dto.ToExpenseResponses(expenses),
		TotalExpenses: total,
	}, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, eventID string, expenseID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.findEntryForEvent(ctx, eventID, expenseID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpenseEntry(ctx, expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.String("expense_id", expenseID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID), slog.String("deleted_by", requestingUserID))
	return nil
}

func (s *expenseService) findEntryForEvent(ctx context.Context, eventID, expenseID string) (*domain.ExpenseEntry, error) {
	entry, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	if entry.EventID != eventID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("expense %s not found", expenseID))
	}
	return entry, nil
}
