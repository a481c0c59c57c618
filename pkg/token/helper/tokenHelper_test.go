package helper

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/studyhall-app/backend/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	user := &model.User{ID: 42, Email: "user@studyhall.dev"}

	signed, err := GenerateAccessToken(user, key, 300)
	require.NoError(t, err)

	token, err := jwt.Parse([]byte(signed), jwt.WithKey(jwa.RS256, &key.PublicKey), jwt.WithValidate(true))
	require.NoError(t, err)

	claim, ok := token.Get("user")
	require.True(t, ok)
	userMap, ok := claim.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), userMap["id"])
	assert.Equal(t, "user@studyhall.dev", userMap["email"])
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	refreshToken, err := GenerateRefreshToken(42, "secret", 3600)
	require.NoError(t, err)
	require.NotEmpty(t, refreshToken.SignedToken)

	userId, id, err := ParseRefreshToken(refreshToken.SignedToken, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), userId)
	assert.Equal(t, refreshToken.ID, id)
}

func TestParseRefreshToken_WrongSecret(t *testing.T) {
	refreshToken, err := GenerateRefreshToken(42, "secret", 3600)
	require.NoError(t, err)

	_, _, err = ParseRefreshToken(refreshToken.SignedToken, "other-secret")
	require.Error(t, err)
}
