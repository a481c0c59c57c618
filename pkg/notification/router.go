package notification

import (
	"github.com/gin-gonic/gin"
)

type AuthenticationMiddleware interface {
	TokenAuthentication(c *gin.Context)
}

func Routes(r *gin.RouterGroup, authenticationMiddleware AuthenticationMiddleware, handler Handler) {
	tokenAuthenticationRouter := r.Group("")
	tokenAuthenticationRouter.Use(authenticationMiddleware.TokenAuthentication)

	tokenAuthenticationRouter.GET("/groups/:groupId/notifications", handler.FindAll)
	tokenAuthenticationRouter.GET("/groups/:groupId/notifications/unread", handler.CountUnread)
	tokenAuthenticationRouter.POST("/groups/:groupId/notifications/read", handler.MarkRead)
	tokenAuthenticationRouter.DELETE("/groups/:groupId/notifications/:notificationId", handler.Delete)
}
