package handler

import (
	"net/http"
	"strconv"

	"github.com/studyhall-app/backend/internal/errdef"

	"github.com/gin-gonic/gin"
)

func GetPathParameter(c *gin.Context, parameter string) (uint, bool) {
	idParam := c.Param(parameter)
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errdef.NewBadRequest("error parsing %q: %v", parameter, err))
		return 0, false
	}
	return uint(id), true
}
