package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := NewJWTVerifier(testSecret)

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":   "u-1",
			"email": "admin@example.com",
			"role":  domain.RoleAdmin,
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		principal, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", principal.UID)
		assert.Equal(t, "admin@example.com", principal.Email)
		assert.Equal(t, domain.RoleAdmin, principal.Role)
	})

	t.Run("missing role defaults to user", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "u-2",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		principal, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, principal.Role)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{
			"sub": "u-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "u-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("missing subject rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.Error(t, err)
	})
}
