package helper

import (
	"crypto/rsa"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/studyhall-app/backend/pkg/model"
)

// GenerateAccessToken mints a short-lived RS256 token embedding the user, so
// the authentication middleware can resolve the session without a store
// round-trip.
func GenerateAccessToken(user *model.User, key *rsa.PrivateKey, expirationInSeconds int) (string, error) {
	unixTime := time.Now().Unix()
	tokenExpiration := unixTime + int64(expirationInSeconds)

	token := jwt.New()

	if err := token.Set(jwt.IssuedAtKey, unixTime); err != nil {
		return "", err
	}

	if err := token.Set(jwt.ExpirationKey, tokenExpiration); err != nil {
		return "", err
	}

	if err := token.Set("user", user); err != nil {
		return "", err
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, key))
	if err != nil {
		return "", err
	}

	return string(signed), nil
}

// RefreshToken carries the signed refresh token along with the id under which
// it is tracked server-side.
type RefreshToken struct {
	SignedToken string
	ID          uuid.UUID
	ExpiresIn   time.Duration
}

// GenerateRefreshToken mints an HS256 refresh token identified by a fresh id.
func GenerateRefreshToken(userId uint, secretKey string, expirationInSeconds int) (*RefreshToken, error) {
	unixTime := time.Now().Unix()
	tokenExpiration := unixTime + int64(expirationInSeconds)
	id := uuid.New()

	token := jwt.New()

	if err := token.Set(jwt.IssuedAtKey, unixTime); err != nil {
		return nil, err
	}

	if err := token.Set(jwt.ExpirationKey, tokenExpiration); err != nil {
		return nil, err
	}

	if err := token.Set(jwt.SubjectKey, strconv.FormatUint(uint64(userId), 10)); err != nil {
		return nil, err
	}

	if err := token.Set(jwt.JwtIDKey, id.String()); err != nil {
		return nil, err
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(secretKey)))
	if err != nil {
		return nil, err
	}

	return &RefreshToken{
		SignedToken: string(signed),
		ID:          id,
		ExpiresIn:   time.Duration(expirationInSeconds) * time.Second,
	}, nil
}

// ParseRefreshToken validates the signature and expiry of a refresh token and
// returns the user id and token id it was minted with.
func ParseRefreshToken(tokenString string, secretKey string) (uint, uuid.UUID, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256, []byte(secretKey)),
		jwt.WithValidate(true),
	)
	if err != nil {
		return 0, uuid.Nil, err
	}

	userId, err := strconv.ParseUint(token.Subject(), 10, 32)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("invalid subject claim: %v", err)
	}

	id, err := uuid.Parse(token.JwtID())
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("invalid jti claim: %v", err)
	}

	return uint(userId), id, nil
}
