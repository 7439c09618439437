package routes

import (
	"time"

	"fixora/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterBookingRoutes sets up the endpoints for the eligibility engine.
func RegisterBookingRoutes(r *gin.Engine, eh *handlers.EligibilityHandler) {
	api := r.Group("/api/booking")
	{
		api.POST("/eligibility", eh.CheckEligibility)
		api.GET("/eligibility/:token", eh.GetEligibilitySnapshot)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, eh *handlers.EligibilityHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, eh)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
