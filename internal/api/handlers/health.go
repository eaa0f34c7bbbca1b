package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/projectlavos/tabforge/internal/config"
)

// HealthHandler serves the health check endpoint
type HealthHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, db *gorm.DB) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	interpreter := "keyword"
	if h.cfg.OpenAIAPIKey != "" || h.cfg.GeminiAPIKey != "" {
		interpreter = "llm"
	}

	history := "disabled"
	if h.db != nil {
		history = "enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"interpreter": interpreter,
		"history":     history,
	})
}
