package models

// Promoter maps to the promoters table.
type Promoter struct {
	PromoterID   string `json:"promoterID"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	City         string `json:"city"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
