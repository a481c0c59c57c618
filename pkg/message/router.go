package message

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r *gin.RouterGroup, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	tokenAuthenticationRouter.POST("/groups/:groupId/messages", handler.Post)
	tokenAuthenticationRouter.GET("/groups/:groupId/messages", handler.FindAll)
}
