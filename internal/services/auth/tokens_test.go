package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podshelf/catalog-api/internal/models"
)

func TestTokens_SignAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	signed, err := tokens.Sign(42, models.RoleHost)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleHost, claims.Role)
}

func TestTokens_Verify_WrongSecret(t *testing.T) {
	signed, err := NewTokens("secret-a", time.Hour).Sign(1, models.RoleListener)
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestTokens_Verify_Expired(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute)

	signed, err := tokens.Sign(1, models.RoleListener)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.Error(t, err)
}

func TestTokens_Verify_Garbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	_, err := tokens.Verify("not.a.token")
	assert.Error(t, err)
}
