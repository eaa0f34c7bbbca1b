package llm

import (
	"context"
)

// Provider defines the interface for LLM providers.
// All providers MUST support structured output (JSON Schema) so the
// style interpreter can rely on parseable responses.
type Provider interface {
	// Generate runs one completion with structured output enforced by
	// the request's OutputSchema.
	Generate(ctx context.Context, request *GenerationRequest) (*GenerationResponse, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string
}

// GenerationRequest contains all parameters needed for one generation
type GenerationRequest struct {
	Model        string
	InputArray   []map[string]any
	SystemPrompt string
	// Structured output schema - REQUIRED for reliable JSON parsing
	OutputSchema *OutputSchema
}

// OutputSchema defines the expected JSON output structure
type OutputSchema struct {
	Name        string
	Description string
	Schema      map[string]any // JSON Schema object
}

// GenerationResponse contains the result from the LLM
type GenerationResponse struct {
	RawOutput string `json:"-"` // Raw JSON text output
	Usage     any    `json:"usage"`
}
