package domain

import "time"

// User is an authenticated operator of the booking manager.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized

	// Refresh token state; the raw token is never stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}
