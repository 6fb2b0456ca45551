package services

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/dto"
)

// ExpenseSvcFacade defines operations on an event's expense ledger.
// Expenses feed profitability only and carry no ceiling.
type ExpenseSvcFacade interface {
	RecordExpense(ctx context.Context, eventID string, req dto.CreateExpenseRequest, creatorUserID string) (*domain.ExpenseEntry, error)
	UpdateExpense(ctx context.Context, eventID string, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.ExpenseEntry, error)
	ListExpenses(ctx context.Context, eventID string) (*dto.ListExpensesResponse, error)
	DeleteExpense(ctx context.Context, eventID string, expenseID string, requestingUserID string) error
}
