package dto

import (
	"github.com/fechasapp/fechas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateArtistRequest defines the payload for creating an artist.
type CreateArtistRequest struct {
	Name         string          `json:"name" binding:"required"`
	Genre        string          `json:"genre"`
	ContactEmail string          `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string          `json:"contactPhone"`
	BaseFee      decimal.Decimal `json:"baseFee"`
}

// UpdateArtistRequest defines the fields editable on an artist.
type UpdateArtistRequest struct {
	Name         *string          `json:"name"`
	Genre        *string          `json:"genre"`
	ContactEmail *string          `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string          `json:"contactPhone"`
	BaseFee      *decimal.Decimal `json:"baseFee"`
	IsActive     *bool            `json:"isActive"`
}

// ArtistResponse defines the data returned for an artist.
type ArtistResponse struct {
	ArtistID     string          `json:"artistID"`
	Name         string          `json:"name"`
	Genre        string          `json:"genre"`
	ContactEmail string          `json:"contactEmail"`
	ContactPhone string          `json:"contactPhone"`
	BaseFee      decimal.Decimal `json:"baseFee"`
	IsActive     bool            `json:"isActive"`
}

// ListArtistsResponse wraps the list of artists.
type ListArtistsResponse struct {
	Artists []ArtistResponse `json:"artists"`
}

// ToArtistResponse converts a domain.Artist to its DTO.
func ToArtistResponse(a *domain.Artist) ArtistResponse {
	return ArtistResponse{
		ArtistID:     a.ArtistID,
		Name:         a.Name,
		Genre:        a.Genre,
		ContactEmail: a.ContactEmail,
		ContactPhone: a.ContactPhone,
		BaseFee:      a.BaseFee,
		IsActive:     a.IsActive,
	}
}

// ToListArtistsResponse converts a slice of domain artists.
func ToListArtistsResponse(artists []domain.Artist) ListArtistsResponse {
	out := make([]ArtistResponse, len(artists))
	for i := range artists {
		out[i] = ToArtistResponse(&artists[i])
	}
	return ListArtistsResponse{Artists: out}
}
