package utils

import (
	"testing"
	"time"

	"github.com/jmuiruri/duka-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	user := models.User{ID: 42, Email: "a@x.com", Name: "Alice"}

	token, err := CreateSessionToken(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := CreateSessionToken(models.User{ID: 1}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "other-secret")
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	token, err := CreateSessionToken(models.User{ID: 1}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "secret")
	assert.Error(t, err)
}

func TestSessionToken_Tampered(t *testing.T) {
	token, err := CreateSessionToken(models.User{ID: 1}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token+"x", "secret")
	assert.Error(t, err)
}
