package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, TokenTypeSession, claims.TokenType)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTExpiredToken(t *testing.T) {
	token, err := GenerateJWT(42, "user@example.com", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestResetTokenCarriesType(t *testing.T) {
	token, err := GenerateResetToken(7, "reset@example.com", "secret", 15*time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, TokenTypeReset, claims.TokenType)
	assert.NotEqual(t, TokenTypeSession, claims.TokenType)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", "secret")
	assert.Error(t, err)
}
