package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetz/internal/config"
)

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer(config.AuthConfig{SecretKey: "test-secret", TokenTTLHours: 1})

	token, expiresAt, err := issuer.Issue("user-1", "alice", true, false, true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsCompanyAdmin)
	assert.False(t, claims.IsApprover)
	assert.True(t, claims.IsCustodian)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(config.AuthConfig{SecretKey: "secret-a", TokenTTLHours: 1})
	other := NewTokenIssuer(config.AuthConfig{SecretKey: "secret-b", TokenTTLHours: 1})

	token, _, err := issuer.Issue("user-1", "alice", false, false, false)
	require.NoError(t, err)

	claims, err := other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issuer := NewTokenIssuer(config.AuthConfig{SecretKey: "test-secret", TokenTTLHours: 1})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   "user-1",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenIssuer_Verify_WrongMethod(t *testing.T) {
	issuer := NewTokenIssuer(config.AuthConfig{SecretKey: "test-secret", TokenTTLHours: 1})

	// alg=none tokens must never verify
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenIssuer_Verify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer(config.AuthConfig{SecretKey: "test-secret", TokenTTLHours: 1})

	claims, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
