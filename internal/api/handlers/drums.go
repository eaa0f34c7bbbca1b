package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectlavos/tabforge/internal/drums"
	"github.com/projectlavos/tabforge/internal/models"
)

// DrumHandler serves drum pattern endpoints
type DrumHandler struct{}

// NewDrumHandler creates a new drum handler
func NewDrumHandler() *DrumHandler {
	return &DrumHandler{}
}

// resolveDrumRequest picks the template and fills defaults.
func resolveDrumRequest(req *models.DrumRequest) (string, bool, bool) {
	patternName := req.Pattern
	if patternName == "" {
		patternName = drums.PatternFromStyle(req.Style)
	}
	if req.Bars <= 0 {
		req.Bars = defaultBars
	}
	if req.Tempo <= 0 {
		req.Tempo = defaultTempo
	}

	crashes, fills := true, true
	if req.Crashes != nil {
		crashes = *req.Crashes
	}
	if req.Fills != nil {
		fills = *req.Fills
	}
	return patternName, crashes, fills
}

// Generate handles POST /api/v1/drums and returns ASCII drum tab
func (h *DrumHandler) Generate(c *gin.Context) {
	var req models.DrumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	patternName, crashes, fills := resolveDrumRequest(&req)
	bars := drums.GeneratePattern(patternName, req.Bars, crashes, fills)

	c.JSON(http.StatusOK, gin.H{
		"pattern": patternName,
		"bars":    req.Bars,
		"tab":     drums.RenderTab(bars),
	})
}

// GenerateMIDI handles POST /api/v1/drums/midi and streams back an SMF
func (h *DrumHandler) GenerateMIDI(c *gin.Context) {
	var req models.DrumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	patternName, crashes, fills := resolveDrumRequest(&req)
	bars := drums.GeneratePattern(patternName, req.Bars, crashes, fills)

	c.Header("Content-Disposition", `attachment; filename="drums.mid"`)
	c.Header("Content-Type", "audio/midi")
	c.Status(http.StatusOK)
	if err := drums.WriteSMF(c.Writer, bars, patternName, float64(req.Tempo)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
