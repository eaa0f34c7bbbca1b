package validate

import (
	"strings"
	"testing"

	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/tab"
	"github.com/projectlavos/tabforge/internal/theory"
)

func renderTab(t *testing.T, root, scale, patternName string, bars int) string {
	t.Helper()
	tuning, err := theory.GetTuning("standard")
	if err != nil {
		t.Fatalf("GetTuning failed: %v", err)
	}
	columns, err := pattern.Generate(pattern.Request{
		Root:     root,
		Scale:    scale,
		Pattern:  patternName,
		Bars:     bars,
		Position: 1,
		Tuning:   tuning,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return tab.Render(columns, tab.NotesPerMeasure)
}

func TestCheck_GeneratedTabPasses(t *testing.T) {
	tests := []struct {
		root    string
		scale   string
		pattern string
	}{
		{"E", "minor", "ascending"},
		{"A", "pentatonic_minor", "descending"},
		{"E", "phrygian", "pedal"},
		{"C", "major", "arpeggio"},
	}

	for _, tt := range tests {
		t.Run(tt.root+"_"+tt.scale+"_"+tt.pattern, func(t *testing.T) {
			tabText := renderTab(t, tt.root, tt.scale, tt.pattern, 2)
			report := Check(tabText, tt.root, tt.scale, tt.pattern, "standard", 2)

			if !report.Passed {
				t.Errorf("Expected pass, got %+v", report)
			}
			if report.NoteCount == 0 {
				t.Error("Expected notes in the report")
			}
			if !report.Playable {
				t.Errorf("Fret span %d flagged unplayable", report.FretSpan)
			}
			if len(report.PitchErrors) != 0 {
				t.Errorf("Unexpected pitch errors: %+v", report.PitchErrors)
			}
		})
	}
}

func TestCheck_WrongScaleFails(t *testing.T) {
	// An E minor run contains F#, which C major does not.
	tabText := renderTab(t, "E", "minor", "ascending", 2)
	report := Check(tabText, "C", "major", "ascending", "standard", 2)

	if report.Passed {
		t.Error("Expected validation to fail against the wrong scale")
	}
	if len(report.PitchErrors) == 0 {
		t.Fatal("Expected pitch errors")
	}
	for _, pe := range report.PitchErrors {
		if !strings.Contains(pe.Reason, "not in C major") {
			t.Errorf("Unexpected reason: %q", pe.Reason)
		}
	}
}

func TestCheck_WideSpanUnplayable(t *testing.T) {
	// Hand-built tab spanning frets 0 to 12 in a box pattern.
	tabText := strings.Join([]string{
		"e|-----|",
		"B|-----|",
		"G|-----|",
		"D|-----|",
		"A|-12--|",
		"E|--0------|",
	}, "\n")
	report := Check(tabText, "E", "minor", "ascending", "standard", 0)

	if report.Playable {
		t.Errorf("Span %d should be unplayable for a box pattern", report.FretSpan)
	}
	if report.Passed {
		t.Error("Report should not pass")
	}
}

func TestCheck_3NPSAllowsWiderSpan(t *testing.T) {
	tabText := renderTab(t, "E", "minor", "3nps", 4)
	report := Check(tabText, "E", "minor", "3nps", "standard", 4)

	if !report.Playable {
		t.Errorf("3NPS span %d should be allowed up to an octave", report.FretSpan)
	}
}

func TestCheck_ParseErrorReported(t *testing.T) {
	report := Check("not a tab", "E", "minor", "ascending", "standard", 2)
	if report.ParseError == "" {
		t.Error("Expected a parse error")
	}
	if report.Passed {
		t.Error("Report with parse error should not pass")
	}
}

func TestCheck_SparseOutputAdvisory(t *testing.T) {
	// One note against a four bar request: parseable and in scale but
	// nowhere near dense enough.
	tabText := strings.Join([]string{
		"e|-----|",
		"B|-----|",
		"G|-----|",
		"D|-----|",
		"A|-----|",
		"E|--0--|",
	}, "\n")
	report := Check(tabText, "E", "minor", "ascending", "standard", 4)

	if report.EnoughNotes {
		t.Error("One note out of sixteen should not count as enough")
	}
	if report.Passed {
		t.Error("Sparse report should not pass")
	}
	if len(report.PitchErrors) != 0 {
		t.Errorf("Open E is in E minor, got %+v", report.PitchErrors)
	}
}

func TestCheck_UnknownTuning(t *testing.T) {
	tabText := renderTab(t, "E", "minor", "ascending", 2)
	report := Check(tabText, "E", "minor", "ascending", "banjo", 2)

	if report.Passed {
		t.Error("Unknown tuning should fail validation")
	}
	if len(report.PitchErrors) == 0 {
		t.Error("Expected the tuning error surfaced as a pitch error")
	}
}
