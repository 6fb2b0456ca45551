package models

import "time"

// User maps to the users table.
type User struct {
	UserID                 string     `json:"userID"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	PasswordHash           string     `json:"-"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}
