package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FailureResponse is the opaque error body returned to form submitters.
// It never carries stack traces or internal identifiers.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GenericFailureMessage is the only text exposed for unexpected faults.
const GenericFailureMessage = "Something went wrong on our end. Please try again later."

// ErrorHandler is a middleware that catches panics and returns the generic
// failure body instead of leaking internals.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, FailureResponse{
					Success: false,
					Message: GenericFailureMessage,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONFailure sends a standardized JSON failure response.
func JSONFailure(c *gin.Context, status int, message string) {
	c.JSON(status, FailureResponse{Success: false, Message: message})
}
