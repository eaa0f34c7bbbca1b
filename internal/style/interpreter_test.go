package style

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_ValidInput(t *testing.T) {
	p := Sanitize(rawParams{
		Root:      "F#",
		Scale:     "harmonic_minor",
		Pattern:   "3nps",
		Position:  json.Number("3"),
		Tempo:     json.Number("180"),
		Tuning:    "drop_d",
		Reasoning: "fast neoclassical run",
	})

	assert.Equal(t, "F#", p.Root)
	assert.Equal(t, "harmonic_minor", p.Scale)
	assert.Equal(t, "3nps", p.Pattern)
	assert.Equal(t, 3, p.Position)
	assert.Equal(t, 180, p.Tempo)
	assert.Equal(t, "drop_d", p.Tuning)
	assert.Equal(t, "fast neoclassical run", p.Reasoning)
}

func TestSanitize_InvalidFieldsFallBackIndependently(t *testing.T) {
	p := Sanitize(rawParams{
		Root:    "X",
		Scale:   "klingon",
		Pattern: "backflip",
		Tuning:  "7string",
	})

	assert.Equal(t, defaultRoot, p.Root)
	assert.Equal(t, defaultScale, p.Scale)
	assert.Equal(t, defaultPattern, p.Pattern)
	assert.Equal(t, defaultPosition, p.Position)
	assert.Equal(t, defaultTempo, p.Tempo)
	assert.Equal(t, defaultTuning, p.Tuning)
}

func TestSanitize_OneBadFieldKeepsTheRest(t *testing.T) {
	p := Sanitize(rawParams{
		Root:     "A",
		Scale:    "wrong",
		Pattern:  "pedal",
		Position: json.Number("2"),
		Tempo:    json.Number("140"),
		Tuning:   "drop_c",
	})

	assert.Equal(t, "A", p.Root)
	assert.Equal(t, defaultScale, p.Scale)
	assert.Equal(t, "pedal", p.Pattern)
	assert.Equal(t, 2, p.Position)
	assert.Equal(t, 140, p.Tempo)
	assert.Equal(t, "drop_c", p.Tuning)
}

func TestSanitize_NormalizesNames(t *testing.T) {
	p := Sanitize(rawParams{
		Root:    "e",
		Scale:   "Harmonic Minor",
		Pattern: "Power Chords",
		Tuning:  "Drop D",
	})

	assert.Equal(t, "E", p.Root)
	assert.Equal(t, "harmonic_minor", p.Scale)
	assert.Equal(t, "power_chords", p.Pattern)
	assert.Equal(t, "drop_d", p.Tuning)
}

func TestSanitize_3NPSNeedsSevenNotes(t *testing.T) {
	p := Sanitize(rawParams{
		Root:    "A",
		Scale:   "pentatonic_minor",
		Pattern: "3nps",
	})

	assert.Equal(t, "pentatonic_minor", p.Scale)
	assert.Equal(t, defaultPattern, p.Pattern, "3nps on a 5-note scale should fall back")
}

func TestSanitize_ClampsRanges(t *testing.T) {
	p := Sanitize(rawParams{
		Position: json.Number("99"),
		Tempo:    json.Number("30"),
	})
	assert.Equal(t, maxPosition, p.Position)
	assert.Equal(t, minTempo, p.Tempo)

	p = Sanitize(rawParams{
		Position: json.Number("0"),
		Tempo:    json.Number("500"),
	})
	assert.Equal(t, 1, p.Position)
	assert.Equal(t, maxTempo, p.Tempo)

	// Fractional values truncate rather than fail.
	p = Sanitize(rawParams{Tempo: json.Number("132.7")})
	assert.Equal(t, 132, p.Tempo)
}

func TestKeywordInterpret(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   Params
	}{
		{
			name:   "shred",
			prompt: "fast shred solo",
			want:   Params{Root: "E", Scale: "harmonic_minor", Pattern: "3nps", Position: 1, Tempo: 180, Tuning: "standard"},
		},
		{
			name:   "metal with key",
			prompt: "aggressive metal riff in D",
			want:   Params{Root: "D", Scale: "phrygian", Pattern: "pedal", Position: 1, Tempo: 160, Tuning: "standard"},
		},
		{
			name:   "blues with flat key",
			prompt: "slow bluesy lead in Eb",
			want:   Params{Root: "D#", Scale: "blues", Pattern: "pedal", Position: 1, Tempo: 100, Tuning: "standard"},
		},
		{
			name:   "drop c",
			prompt: "heavy drop c chugging",
			want:   Params{Root: "E", Scale: "minor", Pattern: "pedal", Position: 1, Tempo: 140, Tuning: "drop_c"},
		},
		{
			name:   "no keywords",
			prompt: "something nice please",
			want:   Params{Root: "E", Scale: "minor", Pattern: "ascending", Position: 1, Tempo: 120, Tuning: "standard"},
		},
		{
			name:   "sharp key",
			prompt: "rock riff in F#",
			want:   Params{Root: "F#", Scale: "pentatonic_minor", Pattern: "ascending", Position: 1, Tempo: 130, Tuning: "standard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeywordInterpret(tt.prompt)
			assert.Equal(t, tt.want.Root, got.Root)
			assert.Equal(t, tt.want.Scale, got.Scale)
			assert.Equal(t, tt.want.Pattern, got.Pattern)
			assert.Equal(t, tt.want.Tempo, got.Tempo)
			assert.Equal(t, tt.want.Tuning, got.Tuning)
			assert.NotEmpty(t, got.Reasoning)
		})
	}
}

func TestKeywordInterpret_FirstMatchWins(t *testing.T) {
	// "shred" outranks "fast": the specific genre tempo sticks.
	p := KeywordInterpret("fast shred")
	assert.Equal(t, 180, p.Tempo)
	assert.Equal(t, "harmonic_minor", p.Scale)
}

func TestInterpret_EmptyPrompt(t *testing.T) {
	i := NewInterpreter(nil, "gpt-5-mini")
	_, _, err := i.Interpret(context.Background(), "   ")
	require.Error(t, err)
}

func TestInterpret_NoProviderUsesKeywords(t *testing.T) {
	i := NewInterpreter(nil, "gpt-5-mini")
	p, resp, err := i.Interpret(context.Background(), "heavy metal in C")
	require.NoError(t, err)

	assert.Equal(t, "C", p.Root)
	assert.Equal(t, "phrygian", p.Scale)
	assert.Nil(t, resp, "keyword path should not report provider usage")
}

func TestDefaults(t *testing.T) {
	p := Defaults()
	assert.Equal(t, "E", p.Root)
	assert.Equal(t, "minor", p.Scale)
	assert.Equal(t, "ascending", p.Pattern)
	assert.Equal(t, 1, p.Position)
	assert.Equal(t, 120, p.Tempo)
	assert.Equal(t, "standard", p.Tuning)
}
