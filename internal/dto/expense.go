package dto

import (
	"time"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for registering a cost line item.
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required,oneof=TRANSPORTE HOSPEDAJE ALIMENTACION PRODUCCION MARKETING OTROS"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateExpenseRequest defines the fields editable on an expense entry.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category" binding:"omitempty,oneof=TRANSPORTE HOSPEDAJE ALIMENTACION PRODUCCION MARKETING OTROS"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
}

// ExpenseResponse defines the data returned for an expense entry.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	EventID     string          `json:"eventID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListExpensesResponse wraps an event's expense ledger with its total.
type ListExpensesResponse struct {
	Expenses      []ExpenseResponse `json:"expenses"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
}

// ToExpenseResponse converts a domain.ExpenseEntry to its DTO.
func ToExpenseResponse(e *domain.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		EventID:     e.EventID,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of expense entries.
func ToExpenseResponses(es []domain.ExpenseEntry) []ExpenseResponse {
	out := make([]ExpenseResponse, len(es))
	for i := range es {
		out[i] = ToExpenseResponse(&es[i])
	}
	return out
}
