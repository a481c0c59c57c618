package message

import (
	"net/http"

	"github.com/studyhall-app/backend/internal/handler"

	"github.com/gin-gonic/gin"
)

func NewHandler(messageService *Service) Handler {
	return Handler{messageService}
}

type Handler struct {
	messageService *Service
}

type PostMessageRequest struct {
	Body string `json:"body" binding:"required,lte=4000"`
}

// Post message
func (h Handler) Post(c *gin.Context) {
	// swagger:route POST /groups/{groupId}/messages postMessage
	//
	// Post message
	//
	// Post a message to a group, every other member gets a notification
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Message
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   415: Error
	groupId, ok := handler.GetPathParameter(c, "groupId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request PostMessageRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	message, err := h.messageService.Post(ctx, groupId, user, request.Body)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// FindAll messages
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /groups/{groupId}/messages listMessages
	//
	// Find all messages
	//
	// Find all messages of a group, oldest first
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []Message
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	groupId, ok := handler.GetPathParameter(c, "groupId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	messages, err := h.messageService.FindAll(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
