package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(testSecret, 42, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ParseSessionToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(testSecret, 7, time.Hour)
	assert.NoError(t, err)

	_, err = ParseSessionToken("another-secret", token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken(testSecret, 7, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseSessionToken(testSecret, token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken(testSecret, "not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("patitas123")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("patitas123", hash))
	assert.False(t, CheckPasswordHash("patitas124", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("abc"))
	assert.NoError(t, ValidatePassword("abcdef"))
}
