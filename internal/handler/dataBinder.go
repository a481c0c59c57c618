package handler

import (
	"fmt"

	"github.com/studyhall-app/backend/internal/errdef"

	"github.com/gin-gonic/gin"
)

func DataBinder(c *gin.Context, req any) error {
	if c.ContentType() != "application/json" {
		reason := fmt.Sprintf("%s only accepts content of type application/json", c.FullPath())
		return errdef.NewUnsupportedMediaType("%s", reason)
	}

	if err := c.ShouldBind(req); err != nil {
		return errdef.NewBadRequest("error binding data: %v", err)
	}

	return nil
}
