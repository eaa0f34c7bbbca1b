// Package fretboard resolves scale and chord tones into physically
// playable coordinates on a six-string fretboard.
package fretboard

import (
	"fmt"

	"github.com/projectlavos/tabforge/internal/theory"
)

// Coordinate is a single fretboard position together with its derived
// pitch information.
type Coordinate struct {
	String   int               `json:"string"` // 0 = low string, 5 = high string
	Fret     int               `json:"fret"`
	Note     theory.PitchClass `json:"-"`
	NoteName string            `json:"note"`
	MIDI     int               `json:"midi"`
	IsRoot   bool              `json:"is_root"`
	Finger   int               `json:"finger,omitempty"` // 1=index .. 4=pinky, 0 when not annotated
}

func newCoordinate(t theory.Tuning, str, fret int, root theory.PitchClass) Coordinate {
	pc := t.PitchClassAt(str, fret)
	return Coordinate{
		String:   str,
		Fret:     fret,
		Note:     pc,
		NoteName: pc.String(),
		MIDI:     t.AbsolutePitch(str, fret),
		IsRoot:   pc == root,
	}
}

// AllPositions returns every coordinate in [minFret, maxFret] whose pitch
// class belongs to the scale, scanning strings low to high.
func AllPositions(root, scale string, tuning theory.Tuning, minFret, maxFret int) ([]Coordinate, error) {
	classes, err := theory.ScalePitchClasses(root, scale)
	if err != nil {
		return nil, err
	}
	rootPC, err := theory.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	set := theory.NewPitchClassSet(classes)

	var positions []Coordinate
	for str := 0; str < theory.NumStrings; str++ {
		for fret := minFret; fret <= maxFret; fret++ {
			if set.Contains(tuning.PitchClassAt(str, fret)) {
				positions = append(positions, newCoordinate(tuning, str, fret, rootPC))
			}
		}
	}
	return positions, nil
}

// fingerForOffset assigns a fretting finger from the fret's offset
// relative to the box anchor. Pure function, fixed thresholds.
func fingerForOffset(offset int) int {
	switch {
	case offset <= 1:
		return 1
	case offset == 2:
		return 2
	case offset == 3:
		return 3
	default:
		return 4
	}
}

// rootFretsOnLowString lists every fret on the lowest string producing
// the root pitch class, ascending.
func rootFretsOnLowString(tuning theory.Tuning, root theory.PitchClass, maxFret int) []int {
	var frets []int
	for fret := 0; fret < maxFret; fret++ {
		if tuning.PitchClassAt(0, fret) == root {
			frets = append(frets, fret)
		}
	}
	return frets
}

// anchorFret selects the anchor for the N-th box position (1-based). If
// fewer roots exist on the low string than requested, the anchor is
// extrapolated three frets per position past the first root.
func anchorFret(tuning theory.Tuning, root theory.PitchClass, position, maxFret int) int {
	roots := rootFretsOnLowString(tuning, root, maxFret)
	if len(roots) == 0 {
		return 0
	}
	if position <= len(roots) {
		return roots[position-1]
	}
	return roots[0] + (position-1)*3
}

// BoxPosition returns all in-scale coordinates inside one hand-span
// window anchored at the position-th root occurrence on the low string.
// The window reaches one fret back and four frets up from the anchor.
// Coordinates carry a suggested fingering relative to the anchor.
func BoxPosition(root, scale string, tuning theory.Tuning, position int) ([]Coordinate, error) {
	classes, err := theory.ScalePitchClasses(root, scale)
	if err != nil {
		return nil, err
	}
	rootPC, err := theory.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	set := theory.NewPitchClassSet(classes)

	anchor := anchorFret(tuning, rootPC, position, theory.MaxFret)
	minFret := anchor - 1
	if minFret < 0 {
		minFret = 0
	}
	maxFret := anchor + 4

	var box []Coordinate
	for str := 0; str < theory.NumStrings; str++ {
		for fret := minFret; fret <= maxFret; fret++ {
			if !set.Contains(tuning.PitchClassAt(str, fret)) {
				continue
			}
			coord := newCoordinate(tuning, str, fret, rootPC)
			coord.Finger = fingerForOffset(fret - anchor)
			box = append(box, coord)
		}
	}
	return box, nil
}

// threeNPSScanWindow bounds the per-string fret search in 3NPS layouts.
const threeNPSScanWindow = 8

// ThreeNotesPerString lays out a three-notes-per-string run. The scale's
// pitch-class sequence is rotated to start at the position-th degree
// (1-based, wrapping), then each string contributes the next three
// pitch classes of the rotation found within an 8-fret scan window.
// A string whose window runs out contributes fewer than three notes;
// that is a documented degraded output, not an error.
func ThreeNotesPerString(root, scale string, tuning theory.Tuning, position int) ([]Coordinate, error) {
	classes, err := theory.ScalePitchClasses(root, scale)
	if err != nil {
		return nil, err
	}
	if len(classes) != 7 {
		return nil, fmt.Errorf("%w: %s has %d notes", theory.ErrInvalidScaleForPattern, scale, len(classes))
	}
	rootPC, err := theory.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}

	rotation := make([]theory.PitchClass, len(classes))
	start := (position - 1) % len(classes)
	for i := range classes {
		rotation[i] = classes[(start+i)%len(classes)]
	}

	anchor := 0
	if roots := rootFretsOnLowString(tuning, rootPC, theory.MaxFret); len(roots) > 0 {
		anchor = roots[0]
	}

	var notes []Coordinate
	scaleIdx := 0
	for str := 0; str < theory.NumStrings; str++ {
		searchStart := anchor
		if str > 0 {
			searchStart = anchor + str*2 - 2
		}
		if searchStart < 0 {
			searchStart = 0
		}

		found := 0
		for fret := searchStart; fret < searchStart+threeNPSScanWindow; fret++ {
			target := rotation[scaleIdx%len(rotation)]
			if tuning.PitchClassAt(str, fret) != target {
				continue
			}
			coord := newCoordinate(tuning, str, fret, rootPC)
			// Standard 3NPS fingering: index, middle, pinky.
			coord.Finger = found + 1
			if found == 2 {
				coord.Finger = 4
			}
			notes = append(notes, coord)
			scaleIdx++
			found++
			if found == 3 {
				break
			}
		}
	}
	return notes, nil
}
