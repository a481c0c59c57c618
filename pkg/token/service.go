package token

import (
	"crypto/rsa"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"
	"github.com/studyhall-app/backend/pkg/token/helper"
)

func NewService(
	logger *slog.Logger,
	tokenRepository tokenRepository,
	privateKey *rsa.PrivateKey,
	accessTokenExpirationSeconds int,
	refreshTokenSecretKey string,
	refreshTokenExpirationSeconds int,
) *Service {
	return &Service{
		logger:                        logger,
		repository:                    tokenRepository,
		privateKey:                    privateKey,
		accessTokenExpirationSeconds:  accessTokenExpirationSeconds,
		refreshTokenSecretKey:         refreshTokenSecretKey,
		refreshTokenExpirationSeconds: refreshTokenExpirationSeconds,
	}
}

type tokenRepository interface {
	SetRefreshToken(userId uint, tokenId string, expiresIn time.Duration) error
	GetRefreshToken(userId uint, tokenId string) (bool, error)
	DeleteRefreshToken(userId uint, tokenId string) error
	DeleteRefreshTokens(userId uint) error
}

// Tokens domain object defining a user's session tokens
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    uint   `json:"expiresIn"`
}

type RefreshTokenData struct {
	SignedToken string
	ID          uuid.UUID
	UserId      uint
}

type Service struct {
	logger                        *slog.Logger
	repository                    tokenRepository
	privateKey                    *rsa.PrivateKey
	accessTokenExpirationSeconds  int
	refreshTokenSecretKey         string
	refreshTokenExpirationSeconds int
}

// GetTokens mints a fresh access and refresh token pair. When a previous
// refresh token id is supplied it is invalidated first, so each refresh token
// can be redeemed only once.
func (t Service) GetTokens(user *model.User, previousRefreshTokenId string) (*Tokens, error) {
	if previousRefreshTokenId != "" {
		if err := t.repository.DeleteRefreshToken(user.ID, previousRefreshTokenId); err != nil {
			return nil, errdef.NewUnauthorized("could not delete previous refresh token for user %d, token id %s", user.ID, previousRefreshTokenId)
		}
	}

	accessToken, err := helper.GenerateAccessToken(user, t.privateKey, t.accessTokenExpirationSeconds)
	if err != nil {
		return nil, fmt.Errorf("error generating access token for user %d: %v", user.ID, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(user.ID, t.refreshTokenSecretKey, t.refreshTokenExpirationSeconds)
	if err != nil {
		return nil, fmt.Errorf("error generating refresh token for user %d: %v", user.ID, err)
	}

	err = t.repository.SetRefreshToken(user.ID, refreshToken.ID.String(), refreshToken.ExpiresIn)
	if err != nil {
		return nil, fmt.Errorf("error storing refresh token for user %d: %v", user.ID, err)
	}

	return &Tokens{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		RefreshToken: refreshToken.SignedToken,
		ExpiresIn:    uint(t.accessTokenExpirationSeconds),
	}, nil
}

// ValidateRefreshToken checks signature, expiry and that the token has not
// been redeemed or revoked.
func (t Service) ValidateRefreshToken(tokenString string) (*RefreshTokenData, error) {
	userId, id, err := helper.ParseRefreshToken(tokenString, t.refreshTokenSecretKey)
	if err != nil {
		return nil, errdef.NewUnauthorized("refresh token not valid")
	}

	live, err := t.repository.GetRefreshToken(userId, id.String())
	if err != nil {
		return nil, fmt.Errorf("error looking up refresh token for user %d: %v", userId, err)
	}
	if !live {
		t.logger.Warn("Rejected refresh token which is no longer live", "user", userId, "tokenId", id.String())
		return nil, errdef.NewUnauthorized("refresh token revoked")
	}

	return &RefreshTokenData{
		SignedToken: tokenString,
		ID:          id,
		UserId:      userId,
	}, nil
}

// SignOut invalidates all refresh tokens of the user.
func (t Service) SignOut(userId uint) error {
	return t.repository.DeleteRefreshTokens(userId)
}
