package mapping

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/models"
)

// ToModelArtist converts a domain artist to its storage model.
func ToModelArtist(d domain.Artist) models.Artist {
	return models.Artist{
		ArtistID:     d.ArtistID,
		Name:         d.Name,
		Genre:        d.Genre,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		BaseFee:      d.BaseFee,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainArtist converts a storage model to a domain artist.
func ToDomainArtist(m models.Artist) domain.Artist {
	return domain.Artist{
		ArtistID:     m.ArtistID,
		Name:         m.Name,
		Genre:        m.Genre,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		BaseFee:      m.BaseFee,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
