package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// issueToken signs a token the way the identity service does.
func issueToken(t *testing.T, key string, user TokenObject, exp int64) string {
	t.Helper()

	claims := jwtClaim{
		UserID:   user.UserID,
		Role:     user.Role,
		Verified: user.Verified,
		Exp:      exp,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestVerifyTokenReadsClaims(t *testing.T) {
	j := NewJWTToken(&Config{SigningKey: "test-signing-key"})
	issued := issueToken(t, "test-signing-key", TokenObject{
		UserID:   42,
		Role:     RoleGamer,
		Verified: true,
	}, time.Now().Add(time.Hour).Unix())

	user, err := j.VerifyToken(issued)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, RoleGamer, user.Role)
	assert.True(t, user.Verified)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	j := NewJWTToken(&Config{SigningKey: "test-signing-key"})
	issued := issueToken(t, "test-signing-key", TokenObject{UserID: 42}, time.Now().Add(-time.Minute).Unix())

	_, err := j.VerifyToken(issued)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	j := NewJWTToken(&Config{SigningKey: "test-signing-key"})
	issued := issueToken(t, "some-other-key", TokenObject{UserID: 42}, time.Now().Add(time.Hour).Unix())

	_, err := j.VerifyToken(issued)
	assert.Error(t, err)
}
