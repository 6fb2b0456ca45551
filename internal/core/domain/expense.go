package domain

import "github.com/shopspring/decimal"

// ExpenseCategory is the closed set of cost categories for an event.
type ExpenseCategory string

const (
	ExpenseTransporte   ExpenseCategory = "TRANSPORTE"
	ExpenseHospedaje    ExpenseCategory = "HOSPEDAJE"
	ExpenseAlimentacion ExpenseCategory = "ALIMENTACION"
	ExpenseProduccion   ExpenseCategory = "PRODUCCION"
	ExpenseMarketing    ExpenseCategory = "MARKETING"
	ExpenseOtros        ExpenseCategory = "OTROS"
)

// ExpenseEntry is one cost line item against an event. Expenses feed the
// profitability summary only; unlike payments they carry no ceiling.
type ExpenseEntry struct {
	ExpenseID   string          `json:"expenseID"` // Primary key (UUID)
	EventID     string          `json:"eventID"`   // FK -> Event (Not Null)
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"` // Optional
	Amount      decimal.Decimal `json:"amount"`      // Positive value
	AuditFields
}
