package rest

import (
	"net/http"

	"newswire/pkg/api"
	"newswire/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgPostNotFound = "Post not found"
	msgInternal     = "Internal server error"
)

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, api.ErrorResponse{Message: msgPostNotFound})
}

// respondInternal logs the fault and answers with a generic message, so
// storage details never reach the client.
func respondInternal(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msgInternal})
}
