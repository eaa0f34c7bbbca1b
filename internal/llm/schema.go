package llm

const (
	tempoMin    = 60
	tempoMax    = 200
	positionMin = 1
	positionMax = 5
)

// GetTabParamsSchema returns the JSON schema for style interpretation
// output. The enums are intentionally open here; the interpreter
// validates against the real name tables and coerces anything invalid,
// so a hallucinated value degrades to a default instead of an error.
// Note: OpenAI requires additionalProperties: false with every property
// listed in 'required'.
func GetTabParamsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"root": map[string]any{
				"type":        "string",
				"description": "Root note, e.g. E, A, C#",
			},
			"scale": map[string]any{
				"type":        "string",
				"description": "Scale name, e.g. minor, phrygian, pentatonic_minor",
			},
			"pattern": map[string]any{
				"type":        "string",
				"description": "Playing pattern, e.g. ascending, pedal, power_chords",
			},
			"position": map[string]any{
				"type":        "integer",
				"description": "Fretboard position (box number)",
				"minimum":     positionMin,
				"maximum":     positionMax,
			},
			"tempo": map[string]any{
				"type":        "integer",
				"description": "Tempo in BPM",
				"minimum":     tempoMin,
				"maximum":     tempoMax,
			},
			"tuning": map[string]any{
				"type":        "string",
				"description": "Guitar tuning, e.g. standard, drop_d",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One sentence explaining the choices",
			},
		},
		"required":             []string{"root", "scale", "pattern", "position", "tempo", "tuning", "reasoning"},
		"additionalProperties": false,
	}
}
