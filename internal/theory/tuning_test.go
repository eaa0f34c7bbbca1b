package theory

import (
	"errors"
	"testing"
)

func TestGetTuning(t *testing.T) {
	tests := []struct {
		name  string
		bases [NumStrings]int
	}{
		{name: "standard", bases: [NumStrings]int{40, 45, 50, 55, 59, 64}},
		{name: "drop_d", bases: [NumStrings]int{38, 45, 50, 55, 59, 64}},
		{name: "drop_c", bases: [NumStrings]int{36, 43, 48, 53, 57, 62}},
		{name: "half_step_down", bases: [NumStrings]int{39, 44, 49, 54, 58, 63}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning, err := GetTuning(tt.name)
			if err != nil {
				t.Fatalf("GetTuning failed: %v", err)
			}
			if tuning.Base != tt.bases {
				t.Errorf("Expected bases %v, got %v", tt.bases, tuning.Base)
			}
		})
	}

	if _, err := GetTuning("ukulele"); !errors.Is(err, ErrUnknownTuning) {
		t.Errorf("Expected ErrUnknownTuning, got %v", err)
	}
}

// Absolute pitch and pitch class must always agree modulo 12, for every
// tuning, string and fret.
func TestTuning_PitchInvariant(t *testing.T) {
	for _, name := range TuningNames() {
		tuning, err := GetTuning(name)
		if err != nil {
			t.Fatalf("GetTuning(%s) failed: %v", name, err)
		}
		for str := 0; str < NumStrings; str++ {
			for fret := 0; fret <= MaxFret; fret++ {
				midi := tuning.AbsolutePitch(str, fret)
				if PitchClass(midi%12) != tuning.PitchClassAt(str, fret) {
					t.Fatalf("%s string %d fret %d: MIDI %d disagrees with pitch class %s",
						name, str, fret, midi, tuning.PitchClassAt(str, fret))
				}
			}
		}
	}
}

func TestTuning_OpenStringNames(t *testing.T) {
	tuning, _ := GetTuning("standard")
	want := [NumStrings]string{"E", "A", "D", "G", "B", "E"}
	if tuning.Names != want {
		t.Errorf("Expected %v, got %v", want, tuning.Names)
	}
	for str := 0; str < NumStrings; str++ {
		if tuning.Open[str].String() != want[str] {
			t.Errorf("String %d: open pitch class %s does not match name %s",
				str, tuning.Open[str], want[str])
		}
	}
}
