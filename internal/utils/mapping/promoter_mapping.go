package mapping

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/models"
)

// ToModelPromoter converts a domain promoter to its storage model.
func ToModelPromoter(d domain.Promoter) models.Promoter {
	return models.Promoter{
		PromoterID:   d.PromoterID,
		Name:         d.Name,
		Company:      d.Company,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		City:         d.City,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPromoter converts a storage model to a domain promoter.
func ToDomainPromoter(m models.Promoter) domain.Promoter {
	return domain.Promoter{
		PromoterID:   m.PromoterID,
		Name:         m.Name,
		Company:      m.Company,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		City:         m.City,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
