package studysession

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r *gin.RouterGroup, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	tokenAuthenticationRouter.POST("/groups/:groupId/sessions", handler.Schedule)
	tokenAuthenticationRouter.GET("/groups/:groupId/sessions", handler.FindAll)
	tokenAuthenticationRouter.DELETE("/groups/:groupId/sessions/:sessionId", handler.Cancel)
}
