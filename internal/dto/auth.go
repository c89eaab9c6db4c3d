package dto

import (
	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// RegisterRequest defines the payload for user registration.
// Role is a free-form string that degrades to "unknown" when unrecognised.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// LoginRequest defines the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed JWT on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a short human-readable result message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserDetailsResponse is the current-user view returned to authenticated callers.
type UserDetailsResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ToUserDetailsResponse converts a domain.User to UserDetailsResponse.
func ToUserDetailsResponse(u *domain.User) UserDetailsResponse {
	return UserDetailsResponse{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
