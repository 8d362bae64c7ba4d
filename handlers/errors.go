package handlers

import (
	"net/http"

	"brightwater/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportClientErrorHandler handles POST /errors. The endpoint is a pure
// logging sink for the website's error boundary: it acknowledges every
// request, even ones it could not parse.
func ReportClientErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var report models.ClientErrorReport
		if err := c.ShouldBindJSON(&report); err != nil {
			logger.Warn("Client error report could not be parsed", zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		logger.Error("Client-side error reported",
			zap.String("message", report.Message),
			zap.String("url", report.URL),
			zap.String("userAgent", report.UserAgent),
			zap.String("timestamp", report.Timestamp),
			zap.String("stack", report.Stack),
			zap.String("componentStack", report.ComponentStack),
		)
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
