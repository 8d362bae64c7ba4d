package handlers

import (
	"net/http"
	"time"

	submissionRepo "brightwater/database/repository/submission"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service status plus the state of the optional
// collaborators: database connectivity and email configuration.
type HealthHandler struct {
	Store           submissionRepo.SubmissionRepository
	EmailConfigured bool
	Version         string
}

func NewHealthHandler(store submissionRepo.SubmissionRepository, emailConfigured bool, version string) *HealthHandler {
	return &HealthHandler{Store: store, EmailConfigured: emailConfigured, Version: version}
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	database := "disconnected"
	if h.Store != nil && h.Store.CheckConnection(c.Request.Context()) {
		database = "connected"
	}

	email := "not configured"
	if h.EmailConfigured {
		email = "configured"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.Version,
		"services": gin.H{
			"database": database,
			"email":    email,
		},
	})
}
