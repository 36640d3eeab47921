package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)

	token, err := manager.GenerateToken("u1", "student", "Ada")
	require.NoError(t, err)

	userID, role, name, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "student", role)
	assert.Equal(t, "Ada", name)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewJWTManager("0123456789abcdef0123456789abcdef", -time.Minute)

	token, err := manager.GenerateToken("u1", "student", "Ada")
	require.NoError(t, err)

	_, _, _, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	manager := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)
	other := NewJWTManager("another-secret-another-secret-32", time.Hour)

	token, err := other.GenerateToken("u1", "student", "Ada")
	require.NoError(t, err)

	_, _, _, err = manager.VerifyToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	manager := NewJWTManager("0123456789abcdef0123456789abcdef", time.Hour)

	_, _, _, err := manager.VerifyToken("not.a.token")
	assert.Error(t, err)
}
