package domain

import (
	"strings"
	"time"
)

// User represents a registered user of the application in the domain.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (e.g., UUID)
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialized
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRole defines the closed set of roles a user can hold.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
	RoleUnknown UserRole = "unknown"
)

// ParseUserRole maps a raw role string to a UserRole.
// Unrecognised values degrade to RoleUnknown rather than failing the request.
func ParseUserRole(raw string) UserRole {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	case "staff":
		return RoleStaff
	default:
		return RoleUnknown
	}
}

// CanSeeAll reports whether the role grants visibility over every business,
// not just the ones the user created.
func (r UserRole) CanSeeAll() bool {
	return r == RoleAdmin
}
