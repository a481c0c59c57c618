package group

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r *gin.RouterGroup, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	tokenAuthenticationRouter.POST("/groups", handler.Create)
	tokenAuthenticationRouter.GET("/groups", handler.FindAll)
	tokenAuthenticationRouter.GET("/groups/:groupId", handler.Find)
	tokenAuthenticationRouter.POST("/groups/:groupId/join", handler.Join)
	tokenAuthenticationRouter.DELETE("/groups/:groupId/leave", handler.Leave)
	tokenAuthenticationRouter.DELETE("/groups/:groupId", handler.Delete)
}
