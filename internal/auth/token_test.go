package auth

import (
	"testing"
	"time"

	"github.com/cybershield/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-0123456789abcdef"

func testUser() *models.User {
	return &models.User{
		ID:    "11111111-1111-1111-1111-111111111111",
		Email: "ana@example.com",
		Role:  "user",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "11111111-1111-1111-1111-111111111111", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.NotEmpty(t, claims.ID, "tokens carry a unique jti")
}

func TestValidate_ExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestValidate_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	other := NewTokenManager("a-completely-different-secret-key", time.Hour)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.Error(t, err)

	_, err = tm.Validate("")
	assert.Error(t, err)
}

func TestGenerate_UniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	first, err := tm.Generate(testUser())
	require.NoError(t, err)
	second, err := tm.Generate(testUser())
	require.NoError(t, err)

	a, err := tm.Validate(first)
	require.NoError(t, err)
	b, err := tm.Validate(second)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
