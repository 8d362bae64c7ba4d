package routes

import (
	"time"

	"brightwater/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterIntakeRoutes registers the form submission endpoints the website
// posts to.
func RegisterIntakeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/contact", hb.SubmitContactHandler)
	r.POST("/bookings", hb.SubmitBookingHandler)
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthCheckHandler)
}

// RegisterErrorSinkRoute registers the client-side error log sink.
func RegisterErrorSinkRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/errors", hb.ReportClientErrorHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterIntakeRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterErrorSinkRoute(r, hb)
}
