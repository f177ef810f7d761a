package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-signing-key")

func TestGenerateClienteToken(t *testing.T) {
	token, err := GenerateClienteToken(testKey, 42, "ana@example.com")
	require.NoError(t, err)

	claims, err := ParseToken(testKey, token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.SubjectID)
	assert.Equal(t, "ana@example.com", claims.Correo)
	assert.Equal(t, TypeCliente, claims.Type)
	assert.Empty(t, claims.Usuario)
	assert.Empty(t, claims.Rol)
}

func TestGenerateAdminToken(t *testing.T) {
	token, err := GenerateAdminToken(testKey, 7, "root", "superadmin")
	require.NoError(t, err)

	claims, err := ParseToken(testKey, token)
	require.NoError(t, err)

	assert.Equal(t, uint(7), claims.SubjectID)
	assert.Equal(t, "root", claims.Usuario)
	assert.Equal(t, "superadmin", claims.Rol)
	assert.Equal(t, TypeAdmin, claims.Type)

	// Admin sessions are short-lived by design of the console.
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 2*time.Hour, ttl)
}

func TestParseToken_Failures(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseToken(testKey, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token, err := GenerateClienteToken(testKey, 1, "a@b.com")
		require.NoError(t, err)

		_, err = ParseToken([]byte("another-key"), token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		now := time.Now().Add(-48 * time.Hour)
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
			SubjectID: 1,
			Type:      TypeCliente,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
		require.NoError(t, err)

		_, err = ParseToken(testKey, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			SubjectID: 1,
			Type:      TypeAdmin,
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseToken(testKey, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
