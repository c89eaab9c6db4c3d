package middleware

import (
	"github.com/bizdesk/business_management_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the context.
const userIDKey = contextKey("userID")

// userRoleKey is the key used to store the authenticated user's role in the context.
const userRoleKey = contextKey("userRole")

// userNameKey is the key used to store the authenticated user's display name in the context.
const userNameKey = contextKey("userName")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin
// context. A missing or malformed claim yields RoleUnknown.
func GetUserRoleFromContext(c *gin.Context) domain.UserRole {
	role, ok := c.Request.Context().Value(userRoleKey).(domain.UserRole)
	if !ok {
		return domain.RoleUnknown
	}
	return role
}

// GetUserNameFromContext retrieves the authenticated user's display name from
// the Gin context. Returns the empty string when absent; callers treat that as
// "resolve via the identity store".
func GetUserNameFromContext(c *gin.Context) string {
	name, _ := c.Request.Context().Value(userNameKey).(string)
	return name
}
