package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessToken(t *testing.T) {
	m := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)

	token, err := m.GenerateAccessToken(42, "dana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.InterviewerID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
}

func TestJWTManager_RefreshToken(t *testing.T) {
	m := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)

	token, err := m.GenerateRefreshToken(42)
	require.NoError(t, err)

	id, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-one", 15*time.Minute, 7*24*time.Hour)
	other := NewJWTManager("secret-two", 15*time.Minute, 7*24*time.Hour)

	token, err := m.GenerateAccessToken(42, "dana@example.com")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret-key", -time.Minute, 7*24*time.Hour)

	token, err := m.GenerateAccessToken(42, "dana@example.com")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_TokenPair(t *testing.T) {
	m := NewJWTManager("test-secret-key", 15*time.Minute, 7*24*time.Hour)

	access, refresh, expiresIn, err := m.GenerateTokenPair(42, "dana@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, int64(900), expiresIn)
}
