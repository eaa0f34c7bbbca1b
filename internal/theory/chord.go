package theory

import "sort"

// chordIntervals maps chord quality names to semitone offsets from the
// chord root. "5" is the two-note power chord.
var chordIntervals = map[string][]int{
	"maj":  {0, 4, 7},
	"min":  {0, 3, 7},
	"dim":  {0, 3, 6},
	"aug":  {0, 4, 8},
	"maj7": {0, 4, 7, 11},
	"min7": {0, 3, 7, 10},
	"dom7": {0, 4, 7, 10},
	"5":    {0, 7},
}

// ChordQualityNames returns the supported chord quality names, sorted.
func ChordQualityNames() []string {
	names := make([]string, 0, len(chordIntervals))
	for name := range chordIntervals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChordTones returns the pitch classes of a chord built on root. An
// unknown quality falls back to a major triad; that is a documented
// default, not an error.
func ChordTones(root, quality string) ([]PitchClass, error) {
	rootPC, err := ParsePitchClass(root)
	if err != nil {
		return nil, err
	}

	intervals, ok := chordIntervals[quality]
	if !ok {
		intervals = chordIntervals["maj"]
	}

	tones := make([]PitchClass, len(intervals))
	for i, offset := range intervals {
		tones[i] = rootPC.Add(offset)
	}
	return tones, nil
}
