package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, logger *zap.SugaredLogger, message string, status int, err error) {
	if status >= 500 {
		logger.Errorw(message, "status", status, "path", c.Request.URL.Path, "error", err)
	} else {
		logger.Debugw(message, "status", status, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": message})
}
