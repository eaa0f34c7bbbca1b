// Package style turns natural language riff descriptions into validated
// generator parameters. The model suggests, the generator decides: every
// value coming back from a provider is checked against the real name
// tables and coerced to a safe default when invalid, so interpretation
// can never produce an unplayable request.
package style

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/projectlavos/tabforge/internal/llm"
	"github.com/projectlavos/tabforge/internal/logger"
	"github.com/projectlavos/tabforge/internal/prompt"
	"github.com/projectlavos/tabforge/internal/theory"
)

const (
	defaultRoot    = "E"
	defaultScale   = "minor"
	defaultPattern = "ascending"
	defaultTuning  = "standard"

	defaultPosition = 1
	maxPosition     = 5

	defaultTempo = 120
	minTempo     = 60
	maxTempo     = 200
)

// Params are the validated generator parameters produced by
// interpretation.
type Params struct {
	Root      string `json:"root"`
	Scale     string `json:"scale"`
	Pattern   string `json:"pattern"`
	Position  int    `json:"position"`
	Tempo     int    `json:"tempo"`
	Tuning    string `json:"tuning"`
	Reasoning string `json:"reasoning,omitempty"`
}

// Defaults returns the parameters used when no provider is available or
// interpretation fails outright.
func Defaults() Params {
	return Params{
		Root:      defaultRoot,
		Scale:     defaultScale,
		Pattern:   defaultPattern,
		Position:  defaultPosition,
		Tempo:     defaultTempo,
		Tuning:    defaultTuning,
		Reasoning: "Default parameters (AI unavailable)",
	}
}

// Interpreter resolves style prompts through an LLM provider, falling
// back to keyword matching when none is configured.
type Interpreter struct {
	factory *llm.ProviderFactory
	builder *prompt.Builder
	model   string
}

// NewInterpreter creates an interpreter using the given factory and
// default model.
func NewInterpreter(factory *llm.ProviderFactory, model string) *Interpreter {
	return &Interpreter{
		factory: factory,
		builder: prompt.NewPromptBuilder(),
		model:   model,
	}
}

// Interpret maps a style description to generator parameters. It never
// returns an error for bad model output: anything unusable degrades to
// defaults, keyword matching covers the no-provider case, and only an
// empty prompt is rejected. The raw provider response is returned
// alongside the parameters so callers can account for token usage; it
// is nil on the keyword and default paths.
func (i *Interpreter) Interpret(ctx context.Context, stylePrompt string) (Params, *llm.GenerationResponse, error) {
	if strings.TrimSpace(stylePrompt) == "" {
		return Params{}, nil, fmt.Errorf("style prompt is empty")
	}

	if i.factory == nil || !i.factory.HasAnyKey() {
		logger.Info("No LLM provider configured, using keyword interpretation", logger.Fields{
			"prompt": stylePrompt,
		})
		return KeywordInterpret(stylePrompt), nil, nil
	}

	provider, err := i.factory.GetProvider(ctx, i.model, "")
	if err != nil {
		logger.Warn("Provider unavailable, using keyword interpretation", logger.Fields{
			"error": err.Error(),
		})
		return KeywordInterpret(stylePrompt), nil, nil
	}

	resp, err := provider.Generate(ctx, &llm.GenerationRequest{
		Model:        i.model,
		SystemPrompt: i.builder.BuildStyleInterpreterPrompt(),
		InputArray: []map[string]any{
			{"role": "user", "content": "Style request: " + stylePrompt},
		},
		OutputSchema: &llm.OutputSchema{
			Name:        "tab_params",
			Description: "Tab generator parameters",
			Schema:      llm.GetTabParamsSchema(),
		},
	})
	if err != nil {
		logger.Warn("Interpretation request failed, using defaults", logger.Fields{
			"error":    err.Error(),
			"provider": provider.Name(),
		})
		return Defaults(), nil, nil
	}

	var raw rawParams
	if err := json.Unmarshal([]byte(resp.RawOutput), &raw); err != nil {
		logger.Warn("Interpretation output was not valid JSON, using defaults", logger.Fields{
			"error": err.Error(),
		})
		// Tokens were spent even though the output was unusable.
		return Defaults(), resp, nil
	}

	return Sanitize(raw), resp, nil
}

// rawParams tolerates partially valid model output. json.Number fields
// absorb both "3" and 3.
type rawParams struct {
	Root      string      `json:"root"`
	Scale     string      `json:"scale"`
	Pattern   string      `json:"pattern"`
	Position  json.Number `json:"position"`
	Tempo     json.Number `json:"tempo"`
	Tuning    string      `json:"tuning"`
	Reasoning string      `json:"reasoning"`
}

// Sanitize coerces raw model output into valid parameters, field by
// field. Each invalid field falls back independently so one bad value
// does not discard the rest.
func Sanitize(raw rawParams) Params {
	p := Params{Reasoning: raw.Reasoning}

	root := strings.ToUpper(strings.TrimSpace(raw.Root))
	if _, err := theory.ParsePitchClass(root); err != nil {
		root = defaultRoot
	}
	p.Root = root

	scale := normalizeName(raw.Scale)
	if _, err := theory.ScaleIntervals(scale); err != nil {
		scale = defaultScale
	}
	p.Scale = scale

	patternName := normalizeName(raw.Pattern)
	if !knownPattern(patternName) {
		patternName = defaultPattern
	}
	// 3nps needs seven notes per octave; shorter scales run ascending
	// instead.
	if patternName == "3nps" {
		if size, err := theory.ScaleSize(scale); err == nil && size != 7 {
			patternName = defaultPattern
		}
	}
	p.Pattern = patternName

	p.Position = clampInt(raw.Position, defaultPosition, 1, maxPosition)
	p.Tempo = clampInt(raw.Tempo, defaultTempo, minTempo, maxTempo)

	tuning := normalizeName(raw.Tuning)
	if _, err := theory.GetTuning(tuning); err != nil {
		tuning = defaultTuning
	}
	p.Tuning = tuning

	return p
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

func knownPattern(name string) bool {
	switch name {
	case "ascending", "descending", "pedal", "arpeggio", "random", "3nps", "power_chords", "progression":
		return true
	}
	return false
}

func clampInt(n json.Number, def, min, max int) int {
	v, err := n.Int64()
	if err != nil {
		if f, ferr := n.Float64(); ferr == nil {
			v = int64(f)
		} else {
			return def
		}
	}
	if v < int64(min) {
		return min
	}
	if v > int64(max) {
		return max
	}
	return int(v)
}
