package mapping

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/models"
)

// ToModelPaymentEntry converts a domain payment entry to its storage model.
func ToModelPaymentEntry(d domain.PaymentEntry) models.PaymentEntry {
	return models.PaymentEntry{
		PaymentID:   d.PaymentID,
		EventID:     d.EventID,
		Type:        models.PaymentType(d.Type),
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		Method:      models.PaymentMethod(d.Method),
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentEntry converts a storage model to a domain payment entry.
func ToDomainPaymentEntry(m models.PaymentEntry) domain.PaymentEntry {
	return domain.PaymentEntry{
		PaymentID:   m.PaymentID,
		EventID:     m.EventID,
		Type:        domain.PaymentType(m.Type),
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Method:      domain.PaymentMethod(m.Method),
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentEntrySlice converts a slice of payment models.
func ToDomainPaymentEntrySlice(ms []models.PaymentEntry) []domain.PaymentEntry {
	out := make([]domain.PaymentEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPaymentEntry(m)
	}
	return out
}
