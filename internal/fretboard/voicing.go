package fretboard

import "github.com/projectlavos/tabforge/internal/theory"

// ChordVoicing builds a playable voicing for a chord near a box
// position: for each string the chord tone closest to the root fret
// within a [-2,+4] reach, bass upward. Strings with no reachable chord
// tone are simply omitted.
func ChordVoicing(root, quality string, tuning theory.Tuning, position int) ([]Coordinate, error) {
	tones, err := theory.ChordTones(root, quality)
	if err != nil {
		return nil, err
	}
	rootPC, err := theory.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	set := theory.NewPitchClassSet(tones)

	// Root fret on the low string near the requested position.
	rootFret := 0
	for fret := 0; fret < theory.MaxFret; fret++ {
		if tuning.PitchClassAt(0, fret) == rootPC {
			if position == 1 || fret >= (position-1)*3 {
				rootFret = fret
				break
			}
		}
	}

	minFret := rootFret - 2
	if minFret < 0 {
		minFret = 0
	}

	var voicing []Coordinate
	for str := 0; str < theory.NumStrings; str++ {
		bestFret := -1
		for fret := minFret; fret < rootFret+5; fret++ {
			if !set.Contains(tuning.PitchClassAt(str, fret)) {
				continue
			}
			if bestFret < 0 || abs(fret-rootFret) < abs(bestFret-rootFret) {
				bestFret = fret
			}
		}
		if bestFret >= 0 {
			voicing = append(voicing, newCoordinate(tuning, str, bestFret, rootPC))
		}
	}
	return voicing, nil
}

// PowerChordVoicing is a chord voicing restricted to the bottom three
// strings, the usual shape for riffing.
func PowerChordVoicing(root string, tuning theory.Tuning, position int) ([]Coordinate, error) {
	voicing, err := ChordVoicing(root, "5", tuning, position)
	if err != nil {
		return nil, err
	}
	bottom := voicing[:0]
	for _, c := range voicing {
		if c.String <= 2 {
			bottom = append(bottom, c)
		}
	}
	return bottom, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
