package theory

import (
	"fmt"
	"sort"
)

// progressionStep is either a plain scale degree (1-7) or a flattened
// degree (Flat=true), e.g. the bVII in a metal riff.
type progressionStep struct {
	Degree int
	Flat   bool
}

var progressions = map[string][]progressionStep{
	// I-I-I-I-IV-IV-I-I-V-IV-I-V
	"blues_12bar": {{1, false}, {1, false}, {1, false}, {1, false}, {4, false}, {4, false}, {1, false}, {1, false}, {5, false}, {4, false}, {1, false}, {5, false}},
	// I-V-vi-IV
	"pop_4chord": {{1, false}, {5, false}, {6, false}, {4, false}},
	// I-IV-V-V
	"rock_power": {{1, false}, {4, false}, {5, false}, {5, false}},
	// ii-V-I
	"jazz_251": {{2, false}, {5, false}, {1, false}},
	// i-bVII-bVI-V
	"metal_riff": {{1, false}, {7, true}, {6, true}, {5, false}},
	// vi-IV-I-V
	"sad_progression": {{6, false}, {4, false}, {1, false}, {5, false}},
	// bVII-bVI-V-i
	"andalusian": {{7, true}, {6, true}, {5, false}, {1, false}},
}

// Degree-quality tables for major and minor keys.
var majorDegreeQualities = map[int]string{
	1: "maj", 2: "min", 3: "min", 4: "maj", 5: "maj", 6: "min", 7: "dim",
}
var minorDegreeQualities = map[int]string{
	1: "min", 2: "dim", 3: "maj", 4: "min", 5: "min", 6: "maj", 7: "maj",
}

// ProgressionChord is one chord in an expanded progression.
type ProgressionChord struct {
	Root    string `json:"root"`
	Quality string `json:"quality"`
	Degree  string `json:"degree"`
}

// ProgressionNames returns the supported progression names, sorted.
func ProgressionNames() []string {
	names := make([]string, 0, len(progressions))
	for name := range progressions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProgressionChords expands a named progression in the key of root/scale
// into concrete (chord root, quality) pairs. Plain degrees take their
// quality from the major or minor table depending on the scale's
// character. Flattened degrees are chromatically lowered scale steps and
// are always treated as borrowed major chords; their pitch is computed
// with a fixed whole-step degree spacing, an intentional simplification
// carried over from the tab engine this models.
func ProgressionChords(root, scale, progression string) ([]ProgressionChord, error) {
	steps, ok := progressions[progression]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgression, progression)
	}

	scaleClasses, err := ScalePitchClasses(root, scale)
	if err != nil {
		return nil, err
	}
	rootPC, err := ParsePitchClass(root)
	if err != nil {
		return nil, err
	}

	qualities := majorDegreeQualities
	if IsMinorCharacter(scale) {
		qualities = minorDegreeQualities
	}

	chords := make([]ProgressionChord, 0, len(steps))
	for _, step := range steps {
		var chordRoot PitchClass
		var quality, degree string

		if step.Flat {
			chordRoot = rootPC.Add((step.Degree-1)*2 - 1)
			quality = "maj"
			degree = fmt.Sprintf("b%d", step.Degree)
		} else {
			// Degrees beyond the scale length wrap; only pentatonic and
			// blues scales are short enough to need it.
			chordRoot = scaleClasses[(step.Degree-1)%len(scaleClasses)]
			quality = qualities[step.Degree]
			if quality == "" {
				quality = "maj"
			}
			degree = fmt.Sprintf("%d", step.Degree)
		}

		chords = append(chords, ProgressionChord{
			Root:    chordRoot.String(),
			Quality: quality,
			Degree:  degree,
		})
	}
	return chords, nil
}
