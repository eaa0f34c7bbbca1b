package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openai/openai-go/responses"
	"google.golang.org/genai"
	"gorm.io/gorm"

	"github.com/projectlavos/tabforge/internal/config"
	"github.com/projectlavos/tabforge/internal/database"
	"github.com/projectlavos/tabforge/internal/llm"
	"github.com/projectlavos/tabforge/internal/logger"
	"github.com/projectlavos/tabforge/internal/metrics"
	"github.com/projectlavos/tabforge/internal/models"
	"github.com/projectlavos/tabforge/internal/observability"
	"github.com/projectlavos/tabforge/internal/style"
)

// InterpretHandler serves the natural language style endpoint
type InterpretHandler struct {
	cfg     *config.Config
	db      *gorm.DB
	metrics *metrics.SentryMetrics
}

// NewInterpretHandler creates a new interpret handler
func NewInterpretHandler(cfg *config.Config, db *gorm.DB) *InterpretHandler {
	return &InterpretHandler{cfg: cfg, db: db, metrics: metrics.NewSentryMetrics()}
}

// usageNumbers normalizes provider-specific usage metadata into token
// counts and an estimated cost. ok is false when no provider call was
// made or the response carries no usage.
func usageNumbers(model string, resp *llm.GenerationResponse) (input, output, total int, costUSD float64, ok bool) {
	if resp == nil {
		return 0, 0, 0, 0, false
	}
	switch u := resp.Usage.(type) {
	case responses.ResponseUsage:
		return int(u.InputTokens), int(u.OutputTokens), int(u.TotalTokens),
			observability.CalculateOpenAICost(model, u), true
	case *genai.GenerateContentResponseUsageMetadata:
		if u == nil {
			return 0, 0, 0, 0, false
		}
		// No Gemini price sheet is wired; tokens still count.
		return int(u.PromptTokenCount), int(u.CandidatesTokenCount), int(u.TotalTokenCount), 0, true
	}
	return 0, 0, 0, 0, false
}

// Interpret handles POST /api/v1/interpret: style prompt in, validated
// parameters plus a generated tab out.
func (h *InterpretHandler) Interpret(c *gin.Context) {
	var req models.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	model := req.Model
	if model == "" {
		model = h.cfg.InterpreterModel
	}

	trace := observability.GetClient().StartTrace(c.Request.Context(), "style.interpret", map[string]interface{}{
		"request_id": c.GetString("request_id"),
		"model":      model,
	})
	defer trace.Finish()

	gen := trace.Generation("interpret", nil)
	gen.Model(model)
	gen.Input(req.Prompt)

	start := time.Now()
	factory := llm.NewProviderFactory(h.cfg.OpenAIAPIKey, h.cfg.GeminiAPIKey)
	interpreter := style.NewInterpreter(factory, model)
	params, resp, err := interpreter.Interpret(c.Request.Context(), req.Prompt)
	if err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen.Output(params)
	cost := 0.0
	if input, output, total, costUSD, ok := usageNumbers(model, resp); ok {
		cost = costUSD
		gen.Usage(input, output, total, costUSD)
		h.metrics.RecordTokenUsage(c.Request.Context(), model, total, input, output)
	}
	gen.Finish()

	logger.Info("Style interpreted", logger.Fields{
		"request_id":  c.GetString("request_id"),
		"root":        params.Root,
		"scale":       params.Scale,
		"pattern":     params.Pattern,
		"cost":        observability.FormatCost(cost),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	rendered, report, err := buildTab(models.TabRequest{
		Root:     params.Root,
		Scale:    params.Scale,
		Pattern:  params.Pattern,
		Bars:     defaultBars,
		Position: params.Position,
		Tuning:   params.Tuning,
		Tempo:    params.Tempo,
	})
	if err != nil {
		// Interpretation succeeded, generation did not; still return
		// the parameters.
		c.JSON(http.StatusOK, gin.H{
			"params": params,
			"error":  err.Error(),
		})
		return
	}

	database.SaveGeneration(h.db, &models.Generation{
		Root:        params.Root,
		Scale:       params.Scale,
		Pattern:     params.Pattern,
		Bars:        defaultBars,
		Position:    params.Position,
		Tuning:      params.Tuning,
		Tab:         rendered,
		NoteCount:   report.NoteCount,
		Passed:      report.Passed,
		StylePrompt: req.Prompt,
		Reasoning:   params.Reasoning,
	})

	c.JSON(http.StatusOK, gin.H{
		"params":     params,
		"tab":        rendered,
		"validation": report,
	})
}
