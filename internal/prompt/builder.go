// Package prompt builds system prompts for the style interpreter. The
// valid option lists are pulled from the live theory tables so the
// prompt can never drift from what the generator accepts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/theory"
)

// styleHints maps style vocabulary to parameter tendencies. The model
// only suggests; the interpreter still validates everything.
const styleHints = `Style to parameter mappings:
- "metal", "aggressive", "heavy" -> phrygian/minor, pedal/3nps, fast tempo (140-180)
- "blues", "soulful", "bb king" -> blues/pentatonic_minor, pedal/random, slow (80-120)
- "jazz", "sophisticated" -> dorian/lydian/melodic_minor, arpeggio, medium (100-140)
- "rock", "classic rock" -> pentatonic_minor/mixolydian, ascending/random, medium (120-140)
- "country", "twangy" -> major/mixolydian, ascending/pedal, medium (120-140)
- "shred", "neoclassical" -> harmonic_minor/phrygian, 3nps, fast (160-200)
- "chill", "ambient" -> major/lydian, arpeggio/ascending, slow (70-100)
- "funk", "groove" -> mixolydian/dorian, pedal/random, medium (100-120)

Drop tunings: "drop d", "drop c", "downtuned" -> drop_d or drop_c
Half step: "eb tuning", "half step down" -> half_step_down`

// Builder builds prompts for the style interpreter
type Builder struct{}

// NewPromptBuilder creates a new prompt builder
func NewPromptBuilder() *Builder {
	return &Builder{}
}

// BuildStyleInterpreterPrompt returns the system prompt instructing the
// model to emit tab generator parameters as JSON.
func (b *Builder) BuildStyleInterpreterPrompt() string {
	var sb strings.Builder

	sb.WriteString("You are a guitar style interpreter. Given a natural language description ")
	sb.WriteString("of a desired guitar riff style, output ONLY a JSON object with parameters ")
	sb.WriteString("for a tab generator.\n\n")

	sb.WriteString(styleHints)
	sb.WriteString("\n\n")

	sb.WriteString("Output format (JSON only, no explanation):\n")
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  %q: %q,           // %s\n", "root", "E", strings.Join(theory.NoteNames[:], ", "))
	fmt.Fprintf(&sb, "  %q: %q,   // %s\n", "scale", "phrygian", strings.Join(theory.ScaleNames(), ", "))
	fmt.Fprintf(&sb, "  %q: %q,    // %s\n", "pattern", "pedal", strings.Join(pattern.Names(), ", "))
	sb.WriteString("  \"position\": 1,         // 1-5 (lower = lower frets)\n")
	sb.WriteString("  \"tempo\": 140,          // 60-200 BPM\n")
	fmt.Fprintf(&sb, "  %q: %q,  // %s\n", "tuning", "standard", strings.Join(theory.TuningNames(), ", "))
	sb.WriteString("  \"reasoning\": \"brief explanation of choices\"\n")
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Output ONLY valid JSON, no markdown code blocks\n")
	sb.WriteString("- All values must be from the valid options listed\n")
	sb.WriteString("- If user mentions a specific key/root, use it\n")
	sb.WriteString("- If user mentions tuning, use it\n")
	sb.WriteString("- For 3nps pattern, only use 7-note scales (not pentatonic/blues)\n")

	return sb.String()
}
