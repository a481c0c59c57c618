package user

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/studyhall-app/backend/internal/errdef"
	"github.com/studyhall-app/backend/internal/handler"
	"github.com/studyhall-app/backend/internal/util"
	"github.com/studyhall-app/backend/pkg/config"
	"github.com/studyhall-app/backend/pkg/model"
	"github.com/studyhall-app/backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func NewHandler(config config.Config, userService userService, tokenService tokenService) Handler {
	return Handler{
		config,
		userService,
		tokenService,
	}
}

type Handler struct {
	config       config.Config
	userService  userService
	tokenService tokenService
}

type userService interface {
	SignUp(ctx context.Context, email, name, password string) (*model.User, error)
	ValidateEmail(ctx context.Context, token uuid.UUID) error
	FindById(ctx context.Context, id uint) (*model.User, error)
}

type tokenService interface {
	GetTokens(user *model.User, previousTokenId string) (*token.Tokens, error)
	ValidateRefreshToken(tokenString string) (*token.RefreshTokenData, error)
	SignOut(userId uint) error
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,gte=12,lte=128"`
}

// SignUp user
func (h Handler) SignUp(c *gin.Context) {
	// swagger:route POST /users signUp
	//
	// Sign up
	//
	// Sign up a user. The account has to be validated via the emailed link
	// before it can sign in.
	//
	// responses:
	//   201: User
	//   400: Error
	//   409: Error
	//   415: Error
	var request SignUpRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), request.Email, request.Name, request.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ValidateEmail user
func (h Handler) ValidateEmail(c *gin.Context) {
	// swagger:route GET /users/validate/{token} validateEmail
	//
	// Validate email
	//
	// Validate the email address of a newly signed up user
	//
	// responses:
	//   200:
	//   400: Error
	//   404: Error
	emailToken, err := uuid.Parse(c.Param("token"))
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("invalid email token"))
		return
	}

	if err := h.userService.ValidateEmail(c.Request.Context(), emailToken); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}

// SignIn user
func (h Handler) SignIn(c *gin.Context) {
	// swagger:route POST /tokens signIn
	//
	// Sign in
	//
	// Sign in and get session tokens, both as the response body and as cookies
	//
	// security:
	//   basicAuth:
	//
	// responses:
	//   201: Tokens
	//   401: Error
	//   403: Error
	user, err := handler.GetUserFromContext(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	tokens, err := h.tokenService.GetTokens(user, "")
	if err != nil {
		_ = c.Error(err)
		return
	}

	util.SetCookies(c, tokens, http.SameSiteStrictMode, h.config.Hostname, h.config.Authentication.AccessTokenExpirationSeconds, h.config.Authentication.RefreshTokenExpirationSeconds)

	c.JSON(http.StatusCreated, tokens)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshToken user
func (h Handler) RefreshToken(c *gin.Context) {
	// swagger:route POST /refresh refreshToken
	//
	// Refresh tokens
	//
	// Redeem a refresh token, from the cookie or the request body, for a fresh
	// token pair
	//
	// responses:
	//   201: Tokens
	//   400: Error
	//   401: Error
	requestToken, err := c.Cookie("refreshToken")
	if err != nil {
		var request RefreshTokenRequest
		if err := handler.DataBinder(c, &request); err != nil {
			_ = c.Error(err)
			return
		}
		requestToken = request.RefreshToken
	}

	refreshToken, err := h.tokenService.ValidateRefreshToken(requestToken)
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userService.FindById(c.Request.Context(), refreshToken.UserId)
	if err != nil {
		if errdef.IsNotFound(err) {
			_ = c.AbortWithError(http.StatusUnauthorized, err)
		} else {
			_ = c.Error(err)
		}
		return
	}

	tokens, err := h.tokenService.GetTokens(user, refreshToken.ID.String())
	if err != nil {
		_ = c.Error(err)
		return
	}

	util.SetCookies(c, tokens, http.SameSiteStrictMode, h.config.Hostname, h.config.Authentication.AccessTokenExpirationSeconds, h.config.Authentication.RefreshTokenExpirationSeconds)

	c.JSON(http.StatusCreated, tokens)
}

// Me user
func (h Handler) Me(c *gin.Context) {
	// swagger:route GET /me me
	//
	// User details
	//
	// Current user details
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: User
	//   401: Error
	//   404: Error
	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	current, err := h.userService.FindById(ctx, user.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// SignOut user
func (h Handler) SignOut(c *gin.Context) {
	// swagger:route DELETE /users signOut
	//
	// Sign out
	//
	// Sign out the current user. The access token stays valid until it
	// expires, but it can no longer be refreshed.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200:
	//   401: Error
	user, err := handler.GetUserFromContext(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.tokenService.SignOut(user.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}
