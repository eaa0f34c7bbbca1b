package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectlavos/tabforge/internal/drums"
	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/theory"
)

// ListScales handles GET /api/v1/scales
func ListScales(c *gin.Context) {
	scales := make([]gin.H, 0)
	for _, name := range theory.ScaleNames() {
		intervals, _ := theory.ScaleIntervals(name)
		scales = append(scales, gin.H{
			"name":      name,
			"intervals": intervals,
			"notes":     len(intervals),
		})
	}
	c.JSON(http.StatusOK, gin.H{"scales": scales})
}

// ListPatterns handles GET /api/v1/patterns
func ListPatterns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patterns": pattern.Names()})
}

// ListTunings handles GET /api/v1/tunings
func ListTunings(c *gin.Context) {
	tunings := make([]gin.H, 0)
	for _, name := range theory.TuningNames() {
		tuning, _ := theory.GetTuning(name)
		tunings = append(tunings, gin.H{
			"name":    name,
			"strings": tuning.Names,
		})
	}
	c.JSON(http.StatusOK, gin.H{"tunings": tunings})
}

// ListProgressions handles GET /api/v1/progressions
func ListProgressions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"progressions": theory.ProgressionNames()})
}

// ListDrumPatterns handles GET /api/v1/drums/patterns
func ListDrumPatterns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patterns": drums.PatternNames()})
}
