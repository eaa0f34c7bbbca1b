package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/projectlavos/tabforge/internal/api/handlers"
	apimiddleware "github.com/projectlavos/tabforge/internal/api/middleware"
	"github.com/projectlavos/tabforge/internal/config"
)

// SetupRouter wires all endpoints. db may be nil when history is
// disabled.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg, db)
	router.GET("/health", healthHandler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Reference data
		v1.GET("/scales", handlers.ListScales)
		v1.GET("/patterns", handlers.ListPatterns)
		v1.GET("/tunings", handlers.ListTunings)
		v1.GET("/progressions", handlers.ListProgressions)
		v1.GET("/drums/patterns", handlers.ListDrumPatterns)

		// Tab generation and export
		tabHandler := handlers.NewTabHandler(cfg, db)
		v1.POST("/tabs", tabHandler.Generate)
		v1.POST("/tabs/midi", tabHandler.GenerateMIDI)
		v1.POST("/tabs/wav", tabHandler.GenerateWAV)
		v1.GET("/history", tabHandler.History)

		// Validation
		validationHandler := handlers.NewValidationHandler()
		v1.POST("/tabs/validate", validationHandler.Validate)
		v1.POST("/validate/sweep", validationHandler.Sweep)

		// Style interpretation
		interpretHandler := handlers.NewInterpretHandler(cfg, db)
		v1.POST("/interpret", interpretHandler.Interpret)

		// Drum patterns
		drumHandler := handlers.NewDrumHandler()
		v1.POST("/drums", drumHandler.Generate)
		v1.POST("/drums/midi", drumHandler.GenerateMIDI)
	}

	return router
}
