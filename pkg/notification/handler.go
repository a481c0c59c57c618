package notification

import (
	"net/http"

	"github.com/studyhall-app/backend/internal/handler"

	"github.com/gin-gonic/gin"
)

func NewHandler(notificationService *Service) Handler {
	return Handler{notificationService}
}

type Handler struct {
	notificationService *Service
}

type MarkReadRequest struct {
	NotificationIDs []uint `json:"notificationIds" binding:"required,min=1"`
}

// CountResponse is the body of the mark-read and unread-count responses.
//
// swagger:model CountResponse
type CountResponse struct {
	Count int64 `json:"count"`
}

// FindAll notifications
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /groups/{groupId}/notifications listNotifications
	//
	// Find all notifications
	//
	// Find all of the authenticated user's notifications in a group, newest first
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []Notification
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

	notifications, err := h.notificationService.FindAll(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// Delete notification
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /groups/{groupId}/notifications/{notificationId} deleteNotification
	//
	// Delete notification
	//
	// Delete one of the authenticated user's notifications
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   204:
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	groupId, ok := handler.GetPathParameter(c, "groupId")
	if !ok {
		return
	}

	notificationId, ok := handler.GetPathParameter(c, "notificationId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	err = h.notificationService.Delete(ctx, groupId, notificationId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkRead notifications
func (h Handler) MarkRead(c *gin.Context) {
	// swagger:route POST /groups/{groupId}/notifications/read markNotificationsRead
	//
	// Mark notifications read
	//
	// Mark the given notifications as read, returns how many were updated
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: CountResponse
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

	var request MarkReadRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	count, err := h.notificationService.MarkRead(ctx, groupId, user, request.NotificationIDs)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// CountUnread notifications
func (h Handler) CountUnread(c *gin.Context) {
	// swagger:route GET /groups/{groupId}/notifications/unread countUnreadNotifications
	//
	// Count unread notifications
	//
	// Count the authenticated user's unread notifications in a group
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: CountResponse
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

	count, err := h.notificationService.CountUnread(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}
