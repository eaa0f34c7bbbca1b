package theory

import (
	"errors"
	"fmt"
)

// NoteNames is the chromatic scale in canonical ordering, sharps only.
var NoteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var (
	ErrUnknownRoot            = errors.New("unknown root note")
	ErrUnknownScale           = errors.New("unknown scale")
	ErrUnknownPattern         = errors.New("unknown pattern")
	ErrUnknownProgression     = errors.New("unknown progression")
	ErrUnknownTuning          = errors.New("unknown tuning")
	ErrInvalidScaleForPattern = errors.New("pattern requires a 7-note scale")
)

// PitchClass is one of the 12 chromatic pitch classes, 0=C through 11=B.
// Arithmetic on pitch classes is modulo 12.
type PitchClass int

// String returns the canonical sharp name for the pitch class.
func (pc PitchClass) String() string {
	return NoteNames[((int(pc)%12)+12)%12]
}

// Add transposes the pitch class by the given number of semitones.
func (pc PitchClass) Add(semitones int) PitchClass {
	return PitchClass((((int(pc) + semitones) % 12) + 12) % 12)
}

// ParsePitchClass maps a canonical note name to its pitch class.
func ParsePitchClass(name string) (PitchClass, error) {
	for i, n := range NoteNames {
		if n == name {
			return PitchClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRoot, name)
}

// MIDIToName converts an absolute MIDI pitch to a note name with octave,
// e.g. 40 -> "E2".
func MIDIToName(midi int) string {
	octave := midi/12 - 1
	return fmt.Sprintf("%s%d", PitchClass(midi%12), octave)
}
