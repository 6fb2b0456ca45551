package mapping

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/models"
)

// ToModelEvent converts a domain event to its storage model.
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:             d.EventID,
		Name:                d.Name,
		Venue:               d.Venue,
		City:                d.City,
		EventDate:           d.EventDate,
		ArtistID:            d.ArtistID,
		PromoterID:          d.PromoterID,
		Status:              models.EventStatus(d.Status),
		NegotiatedTotal:     d.NegotiatedTotal,
		AdvanceAmount:       d.AdvanceAmount,
		SecondPaymentAmount: d.SecondPaymentAmount,
		Notes:               d.Notes,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEvent converts a storage model to a domain event. Ledgers are
// loaded and attached separately by the repository.
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:             m.EventID,
		Name:                m.Name,
		Venue:               m.Venue,
		City:                m.City,
		EventDate:           m.EventDate,
		ArtistID:            m.ArtistID,
		PromoterID:          m.PromoterID,
		Status:              domain.EventStatus(m.Status),
		NegotiatedTotal:     m.NegotiatedTotal,
		AdvanceAmount:       m.AdvanceAmount,
		SecondPaymentAmount: m.SecondPaymentAmount,
		Notes:               m.Notes,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
