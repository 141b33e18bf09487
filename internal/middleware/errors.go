package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobboard/internal/httperr"
)

// ErrorHandler is the single place an error response is written. Handlers
// and middleware attach errors to the context and return; this boundary
// renders the structured status and message, and collapses anything
// unrecognized into a 500 that leaks nothing.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var apiErr *httperr.Error
		if errors.As(err, &apiErr) {
			body := gin.H{"success": false, "error": apiErr.Message}
			if len(apiErr.Fields) > 0 {
				body["errors"] = apiErr.Fields
			}
			c.JSON(apiErr.Status, body)
			return
		}

		logger.Error("Unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	}
}

// NotFound renders the uniform envelope for unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "Route not found",
	})
}
