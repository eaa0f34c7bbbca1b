package prompt

import (
	"strings"
	"testing"

	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/theory"
)

// The prompt must enumerate the live option tables, so a new scale or
// tuning shows up without touching this package.
func TestBuildStyleInterpreterPrompt_ListsAllOptions(t *testing.T) {
	got := NewPromptBuilder().BuildStyleInterpreterPrompt()

	for _, scale := range theory.ScaleNames() {
		if !strings.Contains(got, scale) {
			t.Errorf("Prompt missing scale %q", scale)
		}
	}
	for _, name := range pattern.Names() {
		if !strings.Contains(got, name) {
			t.Errorf("Prompt missing pattern %q", name)
		}
	}
	for _, tuning := range theory.TuningNames() {
		if !strings.Contains(got, tuning) {
			t.Errorf("Prompt missing tuning %q", tuning)
		}
	}

	if !strings.Contains(got, "JSON") {
		t.Error("Prompt should demand JSON output")
	}
	if !strings.Contains(got, "7-note scales") {
		t.Error("Prompt should warn about the 3nps scale restriction")
	}
}
