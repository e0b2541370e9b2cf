package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken("jane@gbmfoods.com", "Jane")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@gbmfoods.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)
	assert.Equal(t, "gbm-admin-api", claims.Issuer)
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateRefreshToken("jane@gbmfoods.com")
	require.NoError(t, err)

	email, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@gbmfoods.com", email)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)

	token, err := manager.GenerateAccessToken("jane@gbmfoods.com", "Jane")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken("jane@gbmfoods.com", "Jane")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	_, err := manager.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}
