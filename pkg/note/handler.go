package note

import (
	"net/http"

	"github.com/studyhall-app/backend/internal/handler"

	"github.com/gin-gonic/gin"
)

func NewHandler(noteService *Service) Handler {
	return Handler{noteService}
}

type Handler struct {
	noteService *Service
}

type SaveNoteRequest struct {
	Title   string `json:"title" binding:"required,notblank,lte=200"`
	Content string `json:"content" binding:"required"`
}

// Create note
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /groups/{groupId}/notes createNote
	//
	// Create note
	//
	// Create a note in a group
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Note
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

	var request SaveNoteRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	note, err := h.noteService.Create(ctx, groupId, user, request.Title, request.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// FindAll notes
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /groups/{groupId}/notes listNotes
	//
	// Find all notes
	//
	// Find all notes of a group, most recently updated first
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []Note
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

	notes, err := h.noteService.FindAll(ctx, groupId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// Update note
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /groups/{groupId}/notes/{noteId} updateNote
	//
	// Update note
	//
	// Update one of the authenticated user's notes
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Note
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   415: Error
	groupId, ok := handler.GetPathParameter(c, "groupId")
	if !ok {
		return
	}

	noteId, ok := handler.GetPathParameter(c, "noteId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request SaveNoteRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	note, err := h.noteService.Update(ctx, groupId, noteId, user, request.Title, request.Content)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// Delete note
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /groups/{groupId}/notes/{noteId} deleteNote
	//
	// Delete note
	//
	// Delete one of the authenticated user's notes
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

	noteId, ok := handler.GetPathParameter(c, "noteId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	user, err := handler.GetUserFromContext(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	err = h.noteService.Delete(ctx, groupId, noteId, user)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
