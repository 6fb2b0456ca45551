package models

import "github.com/shopspring/decimal"

// ExpenseCategory mirrors domain.ExpenseCategory for storage.
type ExpenseCategory string

// ExpenseEntry maps to the expense_entries table.
type ExpenseEntry struct {
	ExpenseID   string          `json:"expenseID"`
	EventID     string          `json:"eventID"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}
