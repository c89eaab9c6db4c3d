package utils

import (
	"testing"
	"time"

	"github.com/bizdesk/business_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &domain.User{
		UserID:   "u-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleAdmin,
	}

	tokenString, err := GenerateJWT(user, "test-secret", time.Hour, "test-issuer")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ParseAndValidateJWT(tokenString, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	user := &domain.User{UserID: "u-1", Username: "alice"}

	tokenString, err := GenerateJWT(user, "test-secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(tokenString, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWT_Expired(t *testing.T) {
	user := &domain.User{UserID: "u-1", Username: "alice"}

	tokenString, err := GenerateJWT(user, "test-secret", -time.Minute, "test-issuer")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(tokenString, "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)
	assert.True(t, CheckPasswordHash("s3cretpass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
