package domain

// Promoter is the counterparty that contracts an event.
type Promoter struct {
	PromoterID   string `json:"promoterID"` // Primary key (UUID)
	Name         string `json:"name"`
	Company      string `json:"company"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	City         string `json:"city"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
