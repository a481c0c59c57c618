package middleware

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/pkg/model"

	"github.com/gin-gonic/gin"
)

func NewAuthentication(publicKey *rsa.PublicKey, signInService signInService) AuthenticationMiddleware {
	return AuthenticationMiddleware{
		publicKey:     publicKey,
		signInService: signInService,
	}
}

type signInService interface {
	SignIn(ctx context.Context, email string, password string) (*model.User, error)
}

// AuthenticationMiddleware resolves the session attached to a request. A
// request either carries an access token (header or cookie) or, on the
// sign-in route only, basic credentials. Downstream handlers consume the
// resolved user from the request context.
type AuthenticationMiddleware struct {
	publicKey     *rsa.PublicKey
	signInService signInService
}

func (m AuthenticationMiddleware) BasicAuthentication(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		m.handleError(c, errdef.NewUnauthorized("invalid Authorization header format"))
		return
	}

	user, err := m.signInService.SignIn(c.Request.Context(), email, password)
	if err != nil {
		m.handleError(c, err)
		return
	}

	m.setUser(c, user)
	c.Next()
}

func (m AuthenticationMiddleware) handleError(c *gin.Context, err error) {
	if errdef.IsForbidden(err) {
		_ = c.AbortWithError(http.StatusForbidden, err)
		return
	}
	_ = c.AbortWithError(http.StatusUnauthorized, err)
}

func (m AuthenticationMiddleware) TokenAuthentication(c *gin.Context) {
	user, err := parseRequest(c.Request, m.publicKey)
	if err != nil {
		_ = c.Error(errdef.NewUnauthorized("token not valid"))
		c.Abort()
		return
	}

	// Extra precaution to ensure that no errors has occurred, and it's safe to call c.Next()
	if len(c.Errors.Errors()) > 0 {
		c.Abort()
		return
	}

	m.setUser(c, user)
	c.Next()
}

func (m AuthenticationMiddleware) setUser(c *gin.Context, user *model.User) {
	c.Set("user", user)
	ctx := model.NewContextWithUser(c.Request.Context(), user)
	c.Request = c.Request.WithContext(ctx)
}

func parseRequest(request *http.Request, key *rsa.PublicKey) (*model.User, error) {
	token, err := jwt.ParseRequest(
		request,
		jwt.WithKey(jwa.RS256, key),
		jwt.WithHeaderKey("Authorization"),
		jwt.WithCookieKey("accessToken"),
	)
	if err != nil {
		return nil, err
	}

	return extractUser(token)
}

func extractUser(token jwt.Token) (*model.User, error) {
	userData, ok := token.Get("user")
	if !ok {
		return nil, errors.New("user not found in claims")
	}

	bytes, err := json.Marshal(userData)
	if err != nil {
		return nil, err
	}

	user := &model.User{}
	err = json.Unmarshal(bytes, user)
	return user, err
}
