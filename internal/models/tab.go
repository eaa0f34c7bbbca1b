// Package models holds the API request/response types and the
// persisted generation record.
package models

// TabRequest wraps the user's generation parameters
type TabRequest struct {
	Root        string `json:"root"`
	Scale       string `json:"scale"`
	Pattern     string `json:"pattern"`
	Bars        int    `json:"bars"`
	Position    int    `json:"position"`
	Tuning      string `json:"tuning"`
	Progression string `json:"progression,omitempty"` // progression pattern only
	Tempo       int    `json:"tempo,omitempty"`        // MIDI/WAV export only
	Seed        *int64 `json:"seed,omitempty"`         // random pattern reproducibility
}

// TabResponse carries a rendered tab plus its validation report
type TabResponse struct {
	Tab        string `json:"tab"`
	Root       string `json:"root"`
	Scale      string `json:"scale"`
	Pattern    string `json:"pattern"`
	Bars       int    `json:"bars"`
	Position   int    `json:"position"`
	Tuning     string `json:"tuning"`
	NoteCount  int    `json:"note_count"`
	Validation any    `json:"validation,omitempty"`
}

// ValidateRequest asks for an independent check of existing tab text
type ValidateRequest struct {
	Tab     string `json:"tab"`
	Root    string `json:"root"`
	Scale   string `json:"scale"`
	Pattern string `json:"pattern"`
	Tuning  string `json:"tuning"`
	Bars    int    `json:"bars"`
}

// InterpretRequest maps a natural language style prompt to parameters
type InterpretRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// DrumRequest selects a drum pattern by name or free-form style text
type DrumRequest struct {
	Pattern string `json:"pattern,omitempty"`
	Style   string `json:"style,omitempty"`
	Bars    int    `json:"bars"`
	Tempo   int    `json:"tempo,omitempty"`
	Crashes *bool  `json:"crashes,omitempty"`
	Fills   *bool  `json:"fills,omitempty"`
}
