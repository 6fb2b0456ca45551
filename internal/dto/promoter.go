package dto

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// CreatePromoterRequest defines the payload for creating a promoter.
type CreatePromoterRequest struct {
	Name         string `json:"name" binding:"required"`
	Company      string `json:"company"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	City         string `json:"city"`
}

// UpdatePromoterRequest defines the fields editable on a promoter.
type UpdatePromoterRequest struct {
	Name         *string `json:"name"`
	Company      *string `json:"company"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
	City         *string `json:"city"`
	IsActive     *bool   `json:"isActive"`
}

// PromoterResponse defines the data returned for a promoter.
type PromoterResponse struct {
	PromoterID   string `json:"promoterID"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	City         string `json:"city"`
	IsActive     bool   `json:"isActive"`
}

// ListPromotersResponse wraps the list of promoters.
type ListPromotersResponse struct {
	Promoters []PromoterResponse `json:"promoters"`
}

// ToPromoterResponse converts a domain.Promoter to its DTO.
func ToPromoterResponse(p *domain.Promoter) PromoterResponse {
	return PromoterResponse{
		PromoterID:   p.PromoterID,
		Name:         p.Name,
		Company:      p.Company,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		City:         p.City,
		IsActive:     p.IsActive,
	}
}

// ToListPromotersResponse converts a slice of domain promoters.
func ToListPromotersResponse(promoters []domain.Promoter) ListPromotersResponse {
	out := make([]PromoterResponse, len(promoters))
	for i := range promoters {
		out[i] = ToPromoterResponse(&promoters[i])
	}
	return ListPromotersResponse{Promoters: out}
}
