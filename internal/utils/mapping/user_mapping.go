package mapping

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/fechasapp/fechas_backend/internal/models"
)

// ToModelUser converts a domain user to its storage model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:                 d.UserID,
		Name:                   d.Name,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a storage model to a domain user.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                 m.UserID,
		Name:                   m.Name,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
