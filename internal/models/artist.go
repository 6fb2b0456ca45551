package models

import "github.com/shopspring/decimal"

// Artist maps to the artists table.
type Artist struct {
	ArtistID     string          `json:"artistID"`
	Name         string          `json:"name"`
	Genre        string          `json:"genre"`
	ContactEmail string          `json:"contactEmail"`
	ContactPhone string          `json:"contactPhone"`
	BaseFee      decimal.Decimal `json:"baseFee"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
