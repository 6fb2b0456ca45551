package mapping

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/models"
)

// ToModelExpenseEntry converts a domain expense entry to its storage model.
func ToModelExpenseEntry(d domain.ExpenseEntry) models.ExpenseEntry {
	return models.ExpenseEntry{
		ExpenseID:   d.ExpenseID,
		EventID:     d.EventID,
		Category:    models.ExpenseCategory(d.Category),
		Description: d.Description,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseEntry converts a storage model to a domain expense entry.
func ToDomainExpenseEntry(m models.ExpenseEntry) domain.ExpenseEntry {
	return domain.ExpenseEntry{
		ExpenseID:   m.ExpenseID,
		EventID:     m.EventID,
		Category:    domain.ExpenseCategory(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseEntrySlice converts a slice of expense models.
func ToDomainExpenseEntrySlice(ms []models.ExpenseEntry) []domain.ExpenseEntry {
	out := make([]domain.ExpenseEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExpenseEntry(m)
	}
	return out
}
