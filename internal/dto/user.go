package dto

import (
	"time"

	"github.com/fechasapp/fechas_backend/internal/core/domain"
)

// CreateUserRequest defines the payload for registering a user.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest defines the data allowed for updating a user. Pointers
// differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// LoginRequest defines the credentials payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to its DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
