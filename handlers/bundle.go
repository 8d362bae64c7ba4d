package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Intake endpoints.
	SubmitContactHandler gin.HandlerFunc
	SubmitBookingHandler gin.HandlerFunc

	// Operational endpoints.
	HealthCheckHandler       gin.HandlerFunc
	ReportClientErrorHandler gin.HandlerFunc
}
