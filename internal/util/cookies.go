package util

import (
	"net/http"

	"github.com/studyhall-app/backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// SetCookies attaches the session tokens to the response. The refresh token is
// scoped to the refresh route so browsers never send it anywhere else.
func SetCookies(c *gin.Context, tokens *token.Tokens, sameSiteMode http.SameSite, hostname string, accessTokenExpirationSeconds int, refreshTokenExpirationSeconds int) {
	c.SetSameSite(sameSiteMode)
	c.SetCookie("accessToken", tokens.AccessToken, accessTokenExpirationSeconds, "/", hostname, true, true)
	c.SetCookie("refreshToken", tokens.RefreshToken, refreshTokenExpirationSeconds, "/refresh", hostname, true, true)
}
