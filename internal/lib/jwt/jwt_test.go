package jwt

import (
	"testing"
	"time"

	"digibayt/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var testUser = models.User{
	ID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	Email: "admin@example.com",
	Role:  models.RoleAdmin,
}

func TestNewToken_RoundTrip(t *testing.T) {
	token, err := NewToken(testUser, testSecret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	meta, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, testUser.ID.String(), meta.UserID)
	assert.Equal(t, testUser.Email, meta.Email)
	assert.Equal(t, models.RoleAdmin, meta.Role)
	assert.Greater(t, meta.ExpiresAt, time.Now().Unix())
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := NewToken(testUser, testSecret, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := NewToken(testUser, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
