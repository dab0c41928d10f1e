package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/apperr"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/logger"
)

// respondError maps a logic error to its HTTP status. Internal details are
// logged, never sent to the caller.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		message = "internal server error"
	}
	c.JSON(status, gin.H{"error": message})
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
