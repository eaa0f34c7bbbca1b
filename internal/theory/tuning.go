package theory

import (
	"fmt"
	"sort"
)

// NumStrings is fixed for the instrument this engine models.
const NumStrings = 6

// MaxFret is the default highest fret considered by position searches.
const MaxFret = 24

// Tuning describes the open strings of a six-string guitar, low string
// (index 0) to high string (index 5). Base holds the absolute MIDI pitch
// of each open string, so pitch at (string, fret) is Base[string]+fret.
type Tuning struct {
	Name  string
	Open  [NumStrings]PitchClass
	Base  [NumStrings]int
	Names [NumStrings]string
}

var tunings = map[string]Tuning{
	"standard": {
		Name:  "standard",
		Open:  [NumStrings]PitchClass{4, 9, 2, 7, 11, 4}, // E A D G B E
		Base:  [NumStrings]int{40, 45, 50, 55, 59, 64},
		Names: [NumStrings]string{"E", "A", "D", "G", "B", "E"},
	},
	"drop_d": {
		Name:  "drop_d",
		Open:  [NumStrings]PitchClass{2, 9, 2, 7, 11, 4}, // D A D G B E
		Base:  [NumStrings]int{38, 45, 50, 55, 59, 64},
		Names: [NumStrings]string{"D", "A", "D", "G", "B", "E"},
	},
	"drop_c": {
		Name:  "drop_c",
		Open:  [NumStrings]PitchClass{0, 7, 0, 5, 9, 2}, // C G C F A D
		Base:  [NumStrings]int{36, 43, 48, 53, 57, 62},
		Names: [NumStrings]string{"C", "G", "C", "F", "A", "D"},
	},
	"half_step_down": {
		Name:  "half_step_down",
		Open:  [NumStrings]PitchClass{3, 8, 1, 6, 10, 3}, // D# G# C# F# A# D#
		Base:  [NumStrings]int{39, 44, 49, 54, 58, 63},
		Names: [NumStrings]string{"D#", "G#", "C#", "F#", "A#", "D#"},
	},
}

// TuningNames returns the supported tuning names, sorted.
func TuningNames() []string {
	names := make([]string, 0, len(tunings))
	for name := range tunings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTuning looks up a tuning by name.
func GetTuning(name string) (Tuning, error) {
	t, ok := tunings[name]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownTuning, name)
	}
	return t, nil
}

// PitchClassAt returns the pitch class sounding at (string, fret).
// Pure function of its inputs; fret bounds are the caller's concern.
func (t Tuning) PitchClassAt(str, fret int) PitchClass {
	return t.Open[str].Add(fret)
}

// AbsolutePitch returns the MIDI pitch sounding at (string, fret).
// Invariant: AbsolutePitch(s,f) mod 12 == PitchClassAt(s,f).
func (t Tuning) AbsolutePitch(str, fret int) int {
	return t.Base[str] + fret
}
