package group

import (
	"net/http"

	"github.com/studyhall-app/backend/internal/handler"

	"github.com/gin-gonic/gin"
)

func NewHandler(groupService *Service) Handler {
	return Handler{
		groupService: groupService,
	}
}

type Handler struct {
	groupService *Service
}

type CreateGroupRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Subject string `json:"subject" binding:"required,notblank"`
	Private bool   `json:"private"`
}

// Create group
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /groups createGroup
	//
	// Create group
	//
	// Create a study group. The caller becomes its owner.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: StudyGroup
	//   400: Error
	//   401: Error
	//   415: Error
	var request CreateGroupRequest

	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	group, err := h.groupService.Create(ctx, request.Name, request.Subject, request.Private, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// Find group by id
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /groups/{groupId} findGroupById
	//
	// Find group
	//
	// Find a group by its id, including its members
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: StudyGroup
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

	group, err := h.groupService.Find(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// FindAll groups of the current user
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /groups findAllGroups
	//
	// Find all groups
	//
	// Find all groups the current user is a member of
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []StudyGroup
	//   401: Error
	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	groups, err := h.groupService.FindAll(ctx, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// Join group
func (h Handler) Join(c *gin.Context) {
	// swagger:route POST /groups/{groupId}/join joinGroup
	//
	// Join group
	//
	// Join a public group as a member
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Membership
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   409: Error
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

	membership, err := h.groupService.Join(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// Leave group
func (h Handler) Leave(c *gin.Context) {
	// swagger:route DELETE /groups/{groupId}/leave leaveGroup
	//
	// Leave group
	//
	// Leave a group. The owner cannot leave.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   204:
	//   400: Error
	//   401: Error
	//   403: Error
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

	err = h.groupService.Leave(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete group
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /groups/{groupId} deleteGroup
	//
	// Delete group
	//
	// Delete a group and everything it owns. Owner only.
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

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	err = h.groupService.Delete(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
