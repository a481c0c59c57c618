package studysession

import (
	"net/http"
	"time"

	"github.com/studyhall-app/backend/internal/handler"

	"github.com/gin-gonic/gin"
)

func NewHandler(sessionService *Service) Handler {
	return Handler{sessionService}
}

type Handler struct {
	sessionService *Service
}

type ScheduleSessionRequest struct {
	Title    string    `json:"title" binding:"required,lte=200"`
	StartsAt time.Time `json:"startsAt" binding:"required"`
	EndsAt   time.Time `json:"endsAt" binding:"required,gtfield=StartsAt"`
}

// Schedule study session
func (h Handler) Schedule(c *gin.Context) {
	// swagger:route POST /groups/{groupId}/sessions scheduleSession
	//
	// Schedule study session
	//
	// Schedule a study session in a group
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: StudySession
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

	var request ScheduleSessionRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	session, err := h.sessionService.Schedule(ctx, groupId, user, request.Title, request.StartsAt, request.EndsAt)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// FindAll study sessions
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /groups/{groupId}/sessions listSessions
	//
	// Find all study sessions
	//
	// Find all study sessions of a group, earliest first
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []StudySession
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

	sessions, err := h.sessionService.FindAll(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// Cancel study session
func (h Handler) Cancel(c *gin.Context) {
	// swagger:route DELETE /groups/{groupId}/sessions/{sessionId} cancelSession
	//
	// Cancel study session
	//
	// Cancel a study session the authenticated user scheduled
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

	sessionId, ok := handler.GetPathParameter(c, "sessionId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	err = h.sessionService.Cancel(ctx, groupId, sessionId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
