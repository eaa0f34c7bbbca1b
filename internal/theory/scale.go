package theory

import (
	"fmt"
	"sort"
)

// scaleIntervals maps each supported scale name to its semitone offsets
// from the root. Offsets are strictly increasing and always start at 0.
var scaleIntervals = map[string][]int{
	"major":            {0, 2, 4, 5, 7, 9, 11},
	"minor":            {0, 2, 3, 5, 7, 8, 10},
	"pentatonic_major": {0, 2, 4, 7, 9},
	"pentatonic_minor": {0, 3, 5, 7, 10},
	"blues":            {0, 3, 5, 6, 7, 10},
	"phrygian":         {0, 1, 3, 5, 7, 8, 10},
	"lydian":           {0, 2, 4, 6, 7, 9, 11},
	"mixolydian":       {0, 2, 4, 5, 7, 9, 10},
	"dorian":           {0, 2, 3, 5, 7, 9, 10},
	"locrian":          {0, 1, 3, 5, 6, 8, 10},
	"harmonic_minor":   {0, 2, 3, 5, 7, 8, 11},
	"melodic_minor":    {0, 2, 3, 5, 7, 9, 11},
}

// minorCharacterScales determines which degree-quality table applies when
// expanding progressions.
var minorCharacterScales = map[string]bool{
	"minor":          true,
	"phrygian":       true,
	"dorian":         true,
	"locrian":        true,
	"harmonic_minor": true,
	"melodic_minor":  true,
}

// ScaleNames returns the supported scale names, sorted.
func ScaleNames() []string {
	names := make([]string, 0, len(scaleIntervals))
	for name := range scaleIntervals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScaleIntervals returns the semitone offsets of the named scale.
func ScaleIntervals(scale string) ([]int, error) {
	intervals, ok := scaleIntervals[scale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, scale)
	}
	return intervals, nil
}

// ScaleSize returns the number of pitch classes in the named scale.
func ScaleSize(scale string) (int, error) {
	intervals, err := ScaleIntervals(scale)
	if err != nil {
		return 0, err
	}
	return len(intervals), nil
}

// IsMinorCharacter reports whether progressions in this scale use the
// minor degree-quality table.
func IsMinorCharacter(scale string) bool {
	return minorCharacterScales[scale]
}

// ScalePitchClasses returns the pitch classes of the named scale built on
// root, in interval order starting with the root itself.
func ScalePitchClasses(root, scale string) ([]PitchClass, error) {
	rootPC, err := ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	intervals, err := ScaleIntervals(scale)
	if err != nil {
		return nil, err
	}

	classes := make([]PitchClass, len(intervals))
	for i, offset := range intervals {
		classes[i] = rootPC.Add(offset)
	}
	return classes, nil
}

// PitchClassSet is a membership set over the 12 pitch classes.
type PitchClassSet [12]bool

// NewPitchClassSet builds a set from a slice of pitch classes.
func NewPitchClassSet(classes []PitchClass) PitchClassSet {
	var set PitchClassSet
	for _, pc := range classes {
		set[int(pc)%12] = true
	}
	return set
}

// Contains reports whether the set contains pc.
func (s PitchClassSet) Contains(pc PitchClass) bool {
	return s[((int(pc)%12)+12)%12]
}
