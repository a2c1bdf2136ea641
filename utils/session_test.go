package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	live := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	assert.False(t, TokenExpired(live, now))

	stale := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	assert.True(t, TokenExpired(stale, now))

	// No exp claim: left for the API to reject.
	noExp := signedToken(t, jwt.MapClaims{"sub": "u1"})
	assert.False(t, TokenExpired(noExp, now))

	// Anything that does not parse as a JWT is treated as expired.
	assert.True(t, TokenExpired("not-a-jwt", now))
	assert.True(t, TokenExpired("", now))
}
