package note

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r *gin.RouterGroup, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	tokenAuthenticationRouter.POST("/groups/:groupId/notes", handler.Create)
	tokenAuthenticationRouter.GET("/groups/:groupId/notes", handler.FindAll)
	tokenAuthenticationRouter.PUT("/groups/:groupId/notes/:noteId", handler.Update)
	tokenAuthenticationRouter.DELETE("/groups/:groupId/notes/:noteId", handler.Delete)
}
