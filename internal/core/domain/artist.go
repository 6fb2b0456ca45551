package domain

import "github.com/shopspring/decimal"

// Artist is a performer that events are booked for.
type Artist struct {
	ArtistID     string          `json:"artistID"` // Primary key (UUID)
	Name         string          `json:"name"`
	Genre        string          `json:"genre"`
	ContactEmail string          `json:"contactEmail"`
	ContactPhone string          `json:"contactPhone"`
	BaseFee      decimal.Decimal `json:"baseFee"` // Reference fee for negotiations
	IsActive     bool            `json:"isActive"`
	AuditFields
}
