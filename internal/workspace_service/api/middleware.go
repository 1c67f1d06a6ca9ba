package api

import (
	"github.com/gin-gonic/gin"

	"codeassist/internal/models"
	"codeassist/pkg/logger"
)

// RequestLogger creates a gin middleware that logs each request with its
// method, path and final status code through the structured logger.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := log.WithRequest(models.RequestInfo{
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			RemoteAddr: c.ClientIP(),
			StatusCode: c.Writer.Status(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("Request failed")
			return
		}
		entry.Info("Request handled")
	}
}
