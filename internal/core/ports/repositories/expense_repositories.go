package repositories

import (
	"context"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// ExpenseReader defines read operations for the expense ledger.
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense entry.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseEntry, error)

	// FindExpensesByEventID retrieves an event's expense ledger ordered by
	// creation time.
	FindExpensesByEventID(ctx context.Context, eventID string) ([]domain.ExpenseEntry, error)
}

// ExpenseWriter defines write operations for the expense ledger. Expenses
// carry no ceiling, so writes need no aggregate re-check.
type ExpenseWriter interface {
	// SaveExpenseEntry inserts a new expense entry.
	SaveExpenseEntry(ctx context.Context, entry domain.ExpenseEntry) error

	// UpdateExpenseEntry updates an existing expense entry.
	UpdateExpenseEntry(ctx context.Context, entry domain.ExpenseEntry) error

	// DeleteExpenseEntry removes an expense entry.
	DeleteExpenseEntry(ctx context.Context, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense-ledger repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
