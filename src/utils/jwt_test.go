package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Run("GenerateThenParse", func(t *testing.T) {
		token, err := GenerateJWT("507f1f77bcf86cd799439011", "alice@example.com", "alice")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("EmptyTokenFails", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("GarbageTokenFails", func(t *testing.T) {
		_, err := ParseJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(32)
	b := GenerateRandomString(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
