package tab

import (
	"strings"
	"testing"

	"github.com/projectlavos/tabforge/internal/fretboard"
	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/theory"
)

func note(str, fret int) fretboard.Coordinate {
	return fretboard.Coordinate{String: str, Fret: fret}
}

func TestRender_SingleNote(t *testing.T) {
	columns := []pattern.Column{{note(5, 0)}}
	got := Render(columns, 4)

	want := strings.Join([]string{
		"e|--0--|",
		"B|-----|",
		"G|-----|",
		"D|-----|",
		"A|-----|",
		"E|-----|",
	}, "\n")
	if got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_TwoDigitFrets(t *testing.T) {
	columns := []pattern.Column{{note(0, 12)}}
	got := Render(columns, 4)

	lines := strings.Split(got, "\n")
	if lines[5] != "E|-12--|" {
		t.Errorf("Two-digit fret cell wrong: %q", lines[5])
	}
	// The slot stays four characters wide, so all lines align.
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			t.Errorf("Line %d has length %d, expected %d", i, len(line), len(lines[0]))
		}
	}
}

func TestRender_BarDividers(t *testing.T) {
	columns := make([]pattern.Column, 8)
	for i := range columns {
		columns[i] = pattern.Column{note(0, i)}
	}
	got := Render(columns, 4)

	lines := strings.Split(got, "\n")
	if len(lines) != theory.NumStrings {
		t.Fatalf("Expected %d lines, got %d", theory.NumStrings, len(lines))
	}
	// One divider between the two bars, plus the closing bar and the
	// label pipe on every line.
	for i, line := range lines {
		if strings.Count(line, "|") != 3 {
			t.Errorf("Line %d: expected 3 pipes, got %d in %q", i, strings.Count(line, "|"), line)
		}
	}
}

func TestRender_ChordColumn(t *testing.T) {
	columns := []pattern.Column{{note(0, 0), note(1, 2), note(2, 2)}}
	got := Render(columns, 4)

	lines := strings.Split(got, "\n")
	if lines[5] != "E|--0--|" {
		t.Errorf("Low string: %q", lines[5])
	}
	if lines[4] != "A|--2--|" {
		t.Errorf("A string: %q", lines[4])
	}
	if lines[3] != "D|--2--|" {
		t.Errorf("D string: %q", lines[3])
	}
	if lines[0] != "e|-----|" {
		t.Errorf("High string should be empty: %q", lines[0])
	}
}

func TestParse_RoundTrip(t *testing.T) {
	tuning, err := theory.GetTuning("standard")
	if err != nil {
		t.Fatalf("GetTuning failed: %v", err)
	}
	columns, err := pattern.AscendingRun("E", "minor", tuning, 1, 2)
	if err != nil {
		t.Fatalf("AscendingRun failed: %v", err)
	}

	rendered := Render(columns, 4)
	parsed, err := Parse(rendered)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(parsed) != len(columns) {
		t.Fatalf("Round trip lost columns: rendered %d, parsed %d", len(columns), len(parsed))
	}
	for i, col := range columns {
		if len(parsed[i].Notes) != len(col) {
			t.Fatalf("Column %d: rendered %d notes, parsed %d", i, len(col), len(parsed[i].Notes))
		}
		for j, want := range col {
			got := parsed[i].Notes[j]
			if got.String != want.String || got.Fret != want.Fret {
				t.Errorf("Column %d note %d: expected (%d,%d), got (%d,%d)",
					i, j, want.String, want.Fret, got.String, got.Fret)
			}
		}
	}
}

func TestParse_ChordRoundTrip(t *testing.T) {
	tuning, err := theory.GetTuning("drop_d")
	if err != nil {
		t.Fatalf("GetTuning failed: %v", err)
	}
	columns, err := pattern.PowerChordRiff("D", "minor", tuning, 1, 2)
	if err != nil {
		t.Fatalf("PowerChordRiff failed: %v", err)
	}

	parsed, err := Parse(Render(columns, 4))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(parsed) != len(columns) {
		t.Fatalf("Round trip lost columns: rendered %d, parsed %d", len(columns), len(parsed))
	}
	for i, col := range parsed {
		if len(col.Notes) < 2 {
			t.Errorf("Column %d should parse as a chord, got %d notes", i, len(col.Notes))
		}
	}
}

func TestRender_ArpeggioQualityFollowsScale(t *testing.T) {
	tuning, err := theory.GetTuning("standard")
	if err != nil {
		t.Fatalf("GetTuning failed: %v", err)
	}

	major, err := pattern.Arpeggio("E", "major", tuning, 1, 2)
	if err != nil {
		t.Fatalf("Arpeggio over major failed: %v", err)
	}
	phrygian, err := pattern.Arpeggio("E", "phrygian", tuning, 1, 2)
	if err != nil {
		t.Fatalf("Arpeggio over phrygian failed: %v", err)
	}

	// Same root, different scale quality: the major arpeggio carries G#,
	// the phrygian one G, so the rendered text must differ.
	if Render(major, 4) == Render(phrygian, 4) {
		t.Error("E major and E phrygian arpeggios rendered identical tabs")
	}

	hasNote := func(columns []pattern.Column, name string) bool {
		for _, col := range columns {
			for _, c := range col {
				if c.NoteName == name {
					return true
				}
			}
		}
		return false
	}
	if !hasNote(major, "G#") || hasNote(major, "G") {
		t.Error("E major arpeggio should sound G#, not G")
	}
	if !hasNote(phrygian, "G") || hasNote(phrygian, "G#") {
		t.Error("E phrygian arpeggio should sound G, not G#")
	}
}

func TestParse_MixedWidthChordSplits(t *testing.T) {
	// A chord mixing single- and double-digit frets puts the digits at
	// different character offsets (slot "--9-" vs "-11-"), so the
	// offset-matching parser reads two columns instead of one. Generated
	// power chords never mix widths this way, but hand-written tabs can.
	parsed, err := Parse(strings.Join([]string{
		"e|-----|",
		"B|-----|",
		"G|-----|",
		"D|-11--|",
		"A|--9--|",
		"E|-----|",
	}, "\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(parsed) != 2 {
		t.Fatalf("Expected the mixed-width chord to split into 2 columns, got %d", len(parsed))
	}
	if parsed[0].Notes[0].Fret != 11 || parsed[0].Notes[0].String != 2 {
		t.Errorf("First column should be fret 11 on string 2, got %+v", parsed[0].Notes[0])
	}
	if parsed[1].Notes[0].Fret != 9 || parsed[1].Notes[0].String != 1 {
		t.Errorf("Second column should be fret 9 on string 1, got %+v", parsed[1].Notes[0])
	}
}

func TestParse_WrongLineCount(t *testing.T) {
	if _, err := Parse("e|--0--|\nB|-----|"); err == nil {
		t.Error("Expected error for two-line input")
	}
}

func TestFrets(t *testing.T) {
	parsed, err := Parse(strings.Join([]string{
		"e|-----|",
		"B|-----|",
		"G|-----|",
		"D|--2--|",
		"A|--2--|",
		"E|--0--|",
	}, "\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	frets := Frets(parsed)
	if len(frets) != 3 {
		t.Fatalf("Expected 3 frets, got %d", len(frets))
	}
}
