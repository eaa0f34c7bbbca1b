package theory

import (
	"errors"
	"testing"
)

func TestProgressionChords_Pop4InCMajor(t *testing.T) {
	chords, err := ProgressionChords("C", "major", "pop_4chord")
	if err != nil {
		t.Fatalf("ProgressionChords failed: %v", err)
	}

	want := []ProgressionChord{
		{Root: "C", Quality: "maj", Degree: "1"},
		{Root: "G", Quality: "maj", Degree: "5"},
		{Root: "A", Quality: "min", Degree: "6"},
		{Root: "F", Quality: "maj", Degree: "4"},
	}
	if len(chords) != len(want) {
		t.Fatalf("Expected %d chords, got %d", len(want), len(chords))
	}
	for i, w := range want {
		if chords[i] != w {
			t.Errorf("Chord %d: expected %+v, got %+v", i, w, chords[i])
		}
	}
}

func TestProgressionChords_FlatDegrees(t *testing.T) {
	// metal_riff is i-bVII-bVI-V. Flat degrees use the fixed whole-step
	// spacing, so bVII of E lands on D#, not the diatonic D.
	chords, err := ProgressionChords("E", "minor", "metal_riff")
	if err != nil {
		t.Fatalf("ProgressionChords failed: %v", err)
	}

	want := []ProgressionChord{
		{Root: "E", Quality: "min", Degree: "1"},
		{Root: "D#", Quality: "maj", Degree: "b7"},
		{Root: "C#", Quality: "maj", Degree: "b6"},
		{Root: "B", Quality: "min", Degree: "5"},
	}
	if len(chords) != len(want) {
		t.Fatalf("Expected %d chords, got %d", len(want), len(chords))
	}
	for i, w := range want {
		if chords[i] != w {
			t.Errorf("Chord %d: expected %+v, got %+v", i, w, chords[i])
		}
	}
}

func TestProgressionChords_Blues12BarLength(t *testing.T) {
	chords, err := ProgressionChords("A", "blues", "blues_12bar")
	if err != nil {
		t.Fatalf("ProgressionChords failed: %v", err)
	}
	if len(chords) != 12 {
		t.Errorf("Expected 12 bars, got %d", len(chords))
	}
	if chords[0].Root != "A" {
		t.Errorf("Bar 1 should be the tonic A, got %s", chords[0].Root)
	}
}

func TestProgressionChords_ShortScaleWraps(t *testing.T) {
	// Degree 6 wraps on a 5-note scale instead of going out of range.
	chords, err := ProgressionChords("A", "pentatonic_minor", "sad_progression")
	if err != nil {
		t.Fatalf("ProgressionChords failed: %v", err)
	}
	if len(chords) != 4 {
		t.Fatalf("Expected 4 chords, got %d", len(chords))
	}
}

func TestProgressionChords_Unknown(t *testing.T) {
	if _, err := ProgressionChords("E", "minor", "nope"); !errors.Is(err, ErrUnknownProgression) {
		t.Errorf("Expected ErrUnknownProgression, got %v", err)
	}
	if _, err := ProgressionChords("E", "martian", "pop_4chord"); !errors.Is(err, ErrUnknownScale) {
		t.Errorf("Expected ErrUnknownScale, got %v", err)
	}
}

func TestChordTones(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		quality string
		want    []string
	}{
		{name: "E major", root: "E", quality: "maj", want: []string{"E", "G#", "B"}},
		{name: "A minor", root: "A", quality: "min", want: []string{"A", "C", "E"}},
		{name: "E power chord", root: "E", quality: "5", want: []string{"E", "B"}},
		{name: "G dominant 7", root: "G", quality: "dom7", want: []string{"G", "B", "D", "F"}},
		{name: "unknown quality falls back to major", root: "C", quality: "sus4", want: []string{"C", "E", "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tones, err := ChordTones(tt.root, tt.quality)
			if err != nil {
				t.Fatalf("ChordTones failed: %v", err)
			}
			if len(tones) != len(tt.want) {
				t.Fatalf("Expected %d tones, got %d", len(tt.want), len(tones))
			}
			for i, name := range tt.want {
				if tones[i].String() != name {
					t.Errorf("Tone %d: expected %s, got %s", i, name, tones[i])
				}
			}
		})
	}
}
