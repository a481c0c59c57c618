package server

import (
	"log/slog"

	"github.com/studyhall-app/backend/internal/middleware"
	"github.com/studyhall-app/backend/pkg/group"
	"github.com/studyhall-app/backend/pkg/health"
	"github.com/studyhall-app/backend/pkg/message"
	"github.com/studyhall-app/backend/pkg/note"
	"github.com/studyhall-app/backend/pkg/notification"
	"github.com/studyhall-app/backend/pkg/studysession"
	"github.com/studyhall-app/backend/pkg/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

type Handlers struct {
	User         user.Handler
	Group        group.Handler
	Notification notification.Handler
	Message      message.Handler
	Note         note.Handler
	StudySession studysession.Handler
}

func GetEngine(logger *slog.Logger, basePath string, allowedOrigins []string, authenticationMiddleware middleware.AuthenticationMiddleware, handlers Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CorrelationID())
	r.Use(sloggin.NewWithConfig(logger, sloggin.Config{
		WithRequestID: true,
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	router.GET("/health", health.Health)

	user.Routes(router, authenticationMiddleware, handlers.User)
	group.Routes(router, authenticationMiddleware, handlers.Group)
	notification.Routes(router, authenticationMiddleware, handlers.Notification)
	message.Routes(router, authenticationMiddleware, handlers.Message)
	note.Routes(router, authenticationMiddleware, handlers.Note)
	studysession.Routes(router, authenticationMiddleware, handlers.StudySession)

	return r
}
