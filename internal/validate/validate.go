// Package validate independently re-checks rendered tablature against
// the parameters that produced it. It works only from the tab text plus
// the original parameters, never from generator state, so a
// generator/renderer disagreement shows up here instead of in a
// downstream consumer.
package validate

import (
	"fmt"

	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/tab"
	"github.com/projectlavos/tabforge/internal/theory"
)

// Box patterns must fit one hand span; 3NPS shifts position per string
// and is allowed to cover about an octave.
const (
	maxBoxFretSpan      = 5
	maxThreeNPSFretSpan = 12
)

// Report is the structured result of validating one tab. Violations are
// enumerated rather than raised: a batch sweep keeps going past
// individual failures.
type Report struct {
	Root    string `json:"root"`
	Scale   string `json:"scale"`
	Pattern string `json:"pattern"`

	Passed bool `json:"passed"`

	NoteCount int  `json:"note_count"`
	MinFret   int  `json:"min_fret"`
	MaxFret   int  `json:"max_fret"`
	FretSpan  int  `json:"fret_span"`
	Playable  bool `json:"playable"`

	// EnoughNotes is advisory: sparse positions legitimately produce
	// short patterns, but fewer than half the requested notes usually
	// means a bad parameter combination.
	EnoughNotes bool `json:"enough_notes"`

	PitchErrors []PitchError `json:"pitch_errors,omitempty"`
	ParseError  string       `json:"parse_error,omitempty"`
}

// PitchError describes one parsed note whose pitch falls outside the
// requested scale.
type PitchError struct {
	String int    `json:"string"`
	Fret   int    `json:"fret"`
	MIDI   int    `json:"midi"`
	Note   string `json:"note"`
	Reason string `json:"reason"`
}

// Check reparses tabText and runs both the playability and
// pitch-in-scale checks. It never returns an error for invalid musical
// content; only the report records what was found. bars conveys how many
// notes were requested so the density check can compare.
func Check(tabText, root, scale, patternName, tuningName string, bars int) Report {
	report := Report{Root: root, Scale: scale, Pattern: patternName}

	columns, err := tab.Parse(tabText)
	if err != nil {
		report.ParseError = err.Error()
		return report
	}

	frets := tab.Frets(columns)
	report.NoteCount = len(frets)

	if len(frets) > 0 {
		report.MinFret, report.MaxFret = frets[0], frets[0]
		for _, f := range frets {
			if f < report.MinFret {
				report.MinFret = f
			}
			if f > report.MaxFret {
				report.MaxFret = f
			}
		}
		report.FretSpan = report.MaxFret - report.MinFret

		maxSpan := maxBoxFretSpan
		if patternName == "3nps" {
			maxSpan = maxThreeNPSFretSpan
		}
		report.Playable = report.FretSpan <= maxSpan
	}

	if bars > 0 {
		requested := bars * pattern.NotesPerBar
		report.EnoughNotes = report.NoteCount*2 >= requested
	} else {
		report.EnoughNotes = report.NoteCount > 0
	}

	report.PitchErrors = checkPitches(columns, root, scale, tuningName)
	report.Passed = report.NoteCount > 0 && report.Playable && report.EnoughNotes &&
		len(report.PitchErrors) == 0 && report.ParseError == ""
	return report
}

// checkPitches recomputes the absolute pitch of every parsed note via
// the tuning model and verifies scale membership mod 12.
func checkPitches(columns []tab.ParsedColumn, root, scale, tuningName string) []PitchError {
	classes, err := theory.ScalePitchClasses(root, scale)
	if err != nil {
		return []PitchError{{Reason: err.Error()}}
	}
	tuning, err := theory.GetTuning(tuningName)
	if err != nil {
		return []PitchError{{Reason: err.Error()}}
	}
	set := theory.NewPitchClassSet(classes)

	var errs []PitchError
	for _, col := range columns {
		for _, note := range col.Notes {
			midi := tuning.AbsolutePitch(note.String, note.Fret)
			pc := theory.PitchClass(midi % 12)
			if set.Contains(pc) {
				continue
			}
			errs = append(errs, PitchError{
				String: note.String,
				Fret:   note.Fret,
				MIDI:   midi,
				Note:   theory.MIDIToName(midi),
				Reason: fmt.Sprintf("MIDI %d (%s) not in %s %s", midi, theory.MIDIToName(midi), root, scale),
			})
		}
	}
	return errs
}
