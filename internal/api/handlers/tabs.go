// Package handlers wires HTTP requests to the theory engine.
package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/projectlavos/tabforge/internal/audio"
	"github.com/projectlavos/tabforge/internal/config"
	"github.com/projectlavos/tabforge/internal/database"
	"github.com/projectlavos/tabforge/internal/export"
	"github.com/projectlavos/tabforge/internal/logger"
	"github.com/projectlavos/tabforge/internal/metrics"
	"github.com/projectlavos/tabforge/internal/models"
	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/tab"
	"github.com/projectlavos/tabforge/internal/theory"
	"github.com/projectlavos/tabforge/internal/validate"
)

const (
	defaultBars     = 4
	defaultPosition = 1
	defaultTempo    = 120
	maxBars         = 32
)

// TabHandler serves tab generation and export endpoints
type TabHandler struct {
	cfg     *config.Config
	db      *gorm.DB
	metrics *metrics.SentryMetrics
}

// NewTabHandler creates a new tab handler
func NewTabHandler(cfg *config.Config, db *gorm.DB) *TabHandler {
	return &TabHandler{cfg: cfg, db: db, metrics: metrics.NewSentryMetrics()}
}

// applyDefaults fills the zero-valued fields of a request.
func applyDefaults(req *models.TabRequest) {
	if req.Root == "" {
		req.Root = "E"
	}
	if req.Scale == "" {
		req.Scale = "minor"
	}
	if req.Pattern == "" {
		req.Pattern = "ascending"
	}
	if req.Bars <= 0 {
		req.Bars = defaultBars
	}
	if req.Bars > maxBars {
		req.Bars = maxBars
	}
	if req.Position <= 0 {
		req.Position = defaultPosition
	}
	if req.Tuning == "" {
		req.Tuning = "standard"
	}
	if req.Tempo <= 0 {
		req.Tempo = defaultTempo
	}
}

// buildTab runs the full pipeline: parameters to columns to rendered
// tab to validation report.
func buildTab(req models.TabRequest) (string, validate.Report, error) {
	tuning, err := theory.GetTuning(req.Tuning)
	if err != nil {
		return "", validate.Report{}, err
	}

	genReq := pattern.Request{
		Root:        req.Root,
		Scale:       req.Scale,
		Pattern:     req.Pattern,
		Bars:        req.Bars,
		Position:    req.Position,
		Tuning:      tuning,
		Progression: req.Progression,
	}
	if req.Pattern == "random" {
		seed := time.Now().UnixNano()
		if req.Seed != nil {
			seed = *req.Seed
		}
		genReq.Rand = rand.New(rand.NewSource(seed))
	}

	columns, err := pattern.Generate(genReq)
	if err != nil {
		return "", validate.Report{}, err
	}
	if len(columns) == 0 {
		return "", validate.Report{}, fmt.Errorf("no notes found for %s %s at position %d", req.Root, req.Scale, req.Position)
	}

	rendered := tab.Render(columns, tab.NotesPerMeasure)
	report := validate.Check(rendered, req.Root, req.Scale, req.Pattern, req.Tuning, req.Bars)
	return rendered, report, nil
}

// Generate handles POST /api/v1/tabs
func (h *TabHandler) Generate(c *gin.Context) {
	var req models.TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	applyDefaults(&req)

	start := time.Now()
	rendered, report, err := buildTab(req)
	h.metrics.RecordGenerationDuration(c.Request.Context(), req.Pattern, time.Since(start), err == nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Tab generated", logger.Fields{
		"request_id": c.GetString("request_id"),
		"root":       req.Root,
		"scale":      req.Scale,
		"pattern":    req.Pattern,
		"notes":      report.NoteCount,
		"passed":     report.Passed,
	})

	database.SaveGeneration(h.db, &models.Generation{
		Root:      req.Root,
		Scale:     req.Scale,
		Pattern:   req.Pattern,
		Bars:      req.Bars,
		Position:  req.Position,
		Tuning:    req.Tuning,
		Tab:       rendered,
		NoteCount: report.NoteCount,
		Passed:    report.Passed,
	})

	c.JSON(http.StatusOK, models.TabResponse{
		Tab:        rendered,
		Root:       req.Root,
		Scale:      req.Scale,
		Pattern:    req.Pattern,
		Bars:       req.Bars,
		Position:   req.Position,
		Tuning:     req.Tuning,
		NoteCount:  report.NoteCount,
		Validation: report,
	})
}

// GenerateMIDI handles POST /api/v1/tabs/midi and streams back an SMF
func (h *TabHandler) GenerateMIDI(c *gin.Context) {
	var req models.TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	applyDefaults(&req)

	rendered, _, err := buildTab(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tuning, err := theory.GetTuning(req.Tuning)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := fmt.Sprintf("%s %s %s", req.Root, req.Scale, req.Pattern)
	c.Header("Content-Disposition", `attachment; filename="riff.mid"`)
	c.Header("Content-Type", "audio/midi")
	c.Status(http.StatusOK)
	if err := export.WriteSMF(c.Writer, rendered, title, float64(req.Tempo), tuning); err != nil {
		logger.Error("MIDI export failed", err, logger.Fields{
			"request_id": c.GetString("request_id"),
		})
	}
}

// GenerateWAV handles POST /api/v1/tabs/wav and streams back audio
func (h *TabHandler) GenerateWAV(c *gin.Context) {
	var req models.TabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	applyDefaults(&req)

	rendered, _, err := buildTab(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tuning, err := theory.GetTuning(req.Tuning)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wav, err := audio.RenderWAV(rendered, float64(req.Tempo), tuning, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="riff.wav"`)
	c.Data(http.StatusOK, "audio/wav", wav)
}

// History handles GET /api/v1/history
func (h *TabHandler) History(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Generation history is not enabled"})
		return
	}

	gens, err := database.RecentGenerations(h.db, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": gens, "count": len(gens)})
}
