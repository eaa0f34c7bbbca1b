package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projectlavos/tabforge/internal/logger"
	"github.com/projectlavos/tabforge/internal/metrics"
	"github.com/projectlavos/tabforge/internal/models"
	"github.com/projectlavos/tabforge/internal/theory"
	"github.com/projectlavos/tabforge/internal/validate"
)

// sweepPatterns are the deterministic patterns exercised by the batch
// sweep. The random walk is excluded: its output depends on the seed,
// so a sweep over it validates the seed, not the engine.
var sweepPatterns = []string{"ascending", "descending", "pedal", "arpeggio", "3nps"}

const (
	sweepPositions   = 5
	maxSweepFailures = 100
)

// ValidationHandler serves tab validation endpoints
type ValidationHandler struct {
	metrics *metrics.SentryMetrics
}

// NewValidationHandler creates a new validation handler
func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{metrics: metrics.NewSentryMetrics()}
}

// Validate handles POST /api/v1/tabs/validate: an independent re-check
// of existing tab text against its claimed parameters.
func (h *ValidationHandler) Validate(c *gin.Context) {
	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Tab == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tab text is required"})
		return
	}
	if req.Root == "" || req.Scale == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "root and scale are required"})
		return
	}
	if req.Tuning == "" {
		req.Tuning = "standard"
	}

	report := validate.Check(req.Tab, req.Root, req.Scale, req.Pattern, req.Tuning, req.Bars)
	c.JSON(http.StatusOK, report)
}

// SweepRequest narrows the parameter space of a sweep. Empty slices
// mean "all".
type SweepRequest struct {
	Roots    []string `json:"roots,omitempty"`
	Scales   []string `json:"scales,omitempty"`
	Patterns []string `json:"patterns,omitempty"`
	Bars     int      `json:"bars,omitempty"`
}

// Sweep handles POST /api/v1/validate/sweep: generate and validate
// every combination of root, scale, pattern and position, reporting
// failures.
func (h *ValidationHandler) Sweep(c *gin.Context) {
	var req SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	roots := req.Roots
	if len(roots) == 0 {
		roots = theory.NoteNames[:]
	}
	scales := req.Scales
	if len(scales) == 0 {
		scales = theory.ScaleNames()
	}
	patterns := req.Patterns
	if len(patterns) == 0 {
		patterns = sweepPatterns
	}
	bars := req.Bars
	if bars <= 0 {
		bars = defaultBars
	}

	start := time.Now()
	total, passed, skipped := 0, 0, 0
	var failures []validate.Report

	for _, root := range roots {
		for _, scale := range scales {
			for _, patternName := range patterns {
				for position := 1; position <= sweepPositions; position++ {
					_, report, err := buildTab(models.TabRequest{
						Root:     root,
						Scale:    scale,
						Pattern:  patternName,
						Bars:     bars,
						Position: position,
						Tuning:   "standard",
						Tempo:    defaultTempo,
					})
					if errors.Is(err, theory.ErrInvalidScaleForPattern) {
						// 3nps on a short scale is an expected
						// incompatibility, not a sweep failure.
						skipped++
						continue
					}
					if err != nil {
						total++
						if len(failures) < maxSweepFailures {
							failures = append(failures, validate.Report{
								Root: root, Scale: scale, Pattern: patternName,
								ParseError: err.Error(),
							})
						}
						continue
					}
					total++
					if report.Passed {
						passed++
					} else if len(failures) < maxSweepFailures {
						failures = append(failures, report)
					}
				}
			}
		}
	}

	duration := time.Since(start)
	h.metrics.RecordValidationSweep(c.Request.Context(), total, passed, duration)
	logger.Info("Validation sweep completed", logger.Fields{
		"request_id":  c.GetString("request_id"),
		"total":       total,
		"passed":      passed,
		"failed":      total - passed,
		"skipped":     skipped,
		"duration_ms": duration.Milliseconds(),
	})

	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"passed":      passed,
		"failed":      total - passed,
		"skipped":     skipped,
		"duration_ms": duration.Milliseconds(),
		"failures":    failures,
	})
}
