// Package classification StudyHall Backend Service.
//
// Backend service of the StudyHall study group application
//
//	Version: 0.1.0
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
//	SecurityDefinitions:
//	  oauth2:
//	    type: oauth2
//	    tokenUrl: /tokens
//	    refreshUrl: /refresh
//	    flow: password
//
// swagger:meta
package main

import (
	stdlog "log"
	"log/slog"
	"os"

	"github.com/studyhall-app/backend/internal/handler"
	"github.com/studyhall-app/backend/internal/log"
	"github.com/studyhall-app/backend/internal/middleware"
	"github.com/studyhall-app/backend/internal/server"
	"github.com/studyhall-app/backend/pkg/config"
	"github.com/studyhall-app/backend/pkg/group"
	"github.com/studyhall-app/backend/pkg/message"
	"github.com/studyhall-app/backend/pkg/note"
	"github.com/studyhall-app/backend/pkg/notification"
	"github.com/studyhall-app/backend/pkg/storage"
	"github.com/studyhall-app/backend/pkg/studysession"
	"github.com/studyhall-app/backend/pkg/token"
	"github.com/studyhall-app/backend/pkg/user"

	"github.com/go-mail/mail"
)

func main() {
	if err := run(); err != nil {
		stdlog.Fatal(err)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	logger := slog.New(log.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	redisClient, err := storage.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}

	privateKey, err := cfg.Authentication.GetPrivateKey()
	if err != nil {
		return err
	}

	tokenRepository := token.NewRepository(redisClient)
	tokenService := token.NewService(
		logger,
		tokenRepository,
		privateKey,
		cfg.Authentication.AccessTokenExpirationSeconds,
		cfg.Authentication.RefreshTokenSecretKey,
		cfg.Authentication.RefreshTokenExpirationSeconds,
	)

	dialer := mail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	userRepository := user.NewRepository(db)
	userService := user.NewService(cfg.UIURL, userRepository, dialer)
	userHandler := user.NewHandler(cfg, userService, tokenService)

	groupRepository := group.NewRepository(db)
	groupService := group.NewService(logger, groupRepository)
	groupHandler := group.NewHandler(groupService)

	notificationRepository := notification.NewRepository(db)
	notificationService := notification.NewService(logger, groupService, notificationRepository)
	notificationHandler := notification.NewHandler(notificationService)

	messageRepository := message.NewRepository(db)
	messageService := message.NewService(logger, groupService, messageRepository)
	messageHandler := message.NewHandler(messageService)

	noteRepository := note.NewRepository(db)
	noteService := note.NewService(logger, groupService, noteRepository)
	noteHandler := note.NewHandler(noteService)

	sessionRepository := studysession.NewRepository(db)
	sessionService := studysession.NewService(logger, groupService, sessionRepository)
	sessionHandler := studysession.NewHandler(sessionService)

	authenticationMiddleware := middleware.NewAuthentication(&privateKey.PublicKey, userService)

	r := server.GetEngine(logger, cfg.BasePath, []string{cfg.UIURL}, authenticationMiddleware, server.Handlers{
		User:         userHandler,
		Group:        groupHandler,
		Notification: notificationHandler,
		Message:      messageHandler,
		Note:         noteHandler,
		StudySession: sessionHandler,
	})
	return r.Run()
}
