// Package pattern orders fretboard coordinates into named playing
// patterns ready for tab rendering.
package pattern

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/projectlavos/tabforge/internal/fretboard"
	"github.com/projectlavos/tabforge/internal/theory"
)

// NotesPerBar is the fixed note density per measure.
const NotesPerBar = 4

// Column is a set of coordinates sounding together: one entry for a
// single note, several for a chord stab. Order is low string to high.
type Column []fretboard.Coordinate

// Names lists the recognized pattern names.
func Names() []string {
	return []string{"ascending", "descending", "pedal", "arpeggio", "random", "3nps", "power_chords", "progression"}
}

// Request carries everything the generator needs for one pattern.
type Request struct {
	Root        string
	Scale       string
	Pattern     string
	Bars        int
	Position    int
	Tuning      theory.Tuning
	Progression string     // progression pattern only; empty means blues_12bar
	Rand        *rand.Rand // random pattern only; one instance per call
}

// Generate dispatches on the pattern name. Degraded outputs (fewer
// columns than bars*4 when the position is sparse) are returned as-is.
func Generate(req Request) ([]Column, error) {
	switch req.Pattern {
	case "ascending":
		return AscendingRun(req.Root, req.Scale, req.Tuning, req.Position, req.Bars)
	case "descending":
		return DescendingRun(req.Root, req.Scale, req.Tuning, req.Position, req.Bars)
	case "pedal":
		return PedalTone(req.Root, req.Scale, req.Tuning, req.Position, req.Bars)
	case "arpeggio":
		return Arpeggio(req.Root, req.Scale, req.Tuning, req.Position, req.Bars)
	case "random":
		return RandomWalk(req.Root, req.Scale, req.Tuning, req.Position, req.Bars, req.Rand)
	case "3nps":
		return ThreeNPSRun(req.Root, req.Scale, req.Tuning, req.Position, req.Bars, true)
	case "power_chords":
		return PowerChordRiff(req.Root, req.Scale, req.Tuning, req.Position, req.Bars)
	case "progression":
		name := req.Progression
		if name == "" {
			name = "blues_12bar"
		}
		return ChordProgression(req.Root, req.Scale, req.Tuning, name, req.Position, "5")
	default:
		return nil, fmt.Errorf("%w: %q", theory.ErrUnknownPattern, req.Pattern)
	}
}

// groupByString buckets coordinates per string index.
func groupByString(coords []fretboard.Coordinate) map[int][]fretboard.Coordinate {
	byString := make(map[int][]fretboard.Coordinate)
	for _, c := range coords {
		byString[c.String] = append(byString[c.String], c)
	}
	return byString
}

func singles(coords []fretboard.Coordinate) []Column {
	columns := make([]Column, len(coords))
	for i, c := range coords {
		columns[i] = Column{c}
	}
	return columns
}

// AscendingRun walks the box string by string, low to high, low fret to
// high fret. Output is truncated to bars*4 notes; a sparse box simply
// yields fewer.
func AscendingRun(root, scale string, tuning theory.Tuning, position, bars int) ([]Column, error) {
	box, err := fretboard.BoxPosition(root, scale, tuning, position)
	if err != nil {
		return nil, err
	}

	byString := groupByString(box)
	var run []fretboard.Coordinate
	for str := 0; str < theory.NumStrings; str++ {
		notes := byString[str]
		sort.Slice(notes, func(i, j int) bool { return notes[i].Fret < notes[j].Fret })
		run = append(run, notes...)
	}

	if needed := bars * NotesPerBar; len(run) > needed {
		run = run[:needed]
	}
	return singles(run), nil
}

// DescendingRun is the mirror walk: high string to low, high fret down.
func DescendingRun(root, scale string, tuning theory.Tuning, position, bars int) ([]Column, error) {
	box, err := fretboard.BoxPosition(root, scale, tuning, position)
	if err != nil {
		return nil, err
	}

	byString := groupByString(box)
	var run []fretboard.Coordinate
	for str := theory.NumStrings - 1; str >= 0; str-- {
		notes := byString[str]
		sort.Slice(notes, func(i, j int) bool { return notes[i].Fret > notes[j].Fret })
		run = append(run, notes...)
	}

	if needed := bars * NotesPerBar; len(run) > needed {
		run = run[:needed]
	}
	return singles(run), nil
}

// PedalTone alternates a low root anchor with cycling melody notes from
// the higher strings of the box.
func PedalTone(root, scale string, tuning theory.Tuning, position, bars int) ([]Column, error) {
	box, err := fretboard.BoxPosition(root, scale, tuning, position)
	if err != nil {
		return nil, err
	}
	if len(box) == 0 {
		return nil, nil
	}

	var roots []fretboard.Coordinate
	for _, c := range box {
		if c.IsRoot {
			roots = append(roots, c)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].String < roots[j].String })

	pedal := box[0]
	if len(roots) > 0 {
		pedal = roots[0]
	}

	var melody []fretboard.Coordinate
	for _, c := range box {
		if c.String > pedal.String {
			melody = append(melody, c)
		}
	}
	sort.Slice(melody, func(i, j int) bool {
		if melody[i].String != melody[j].String {
			return melody[i].String < melody[j].String
		}
		return melody[i].Fret < melody[j].Fret
	})
	if len(melody) == 0 {
		for _, c := range box {
			if c != pedal {
				melody = append(melody, c)
			}
		}
	}
	if len(melody) == 0 {
		return nil, nil
	}

	needed := bars * NotesPerBar
	columns := make([]Column, 0, needed)
	for i := 0; i < needed; i++ {
		if i%2 == 0 {
			columns = append(columns, Column{pedal})
		} else {
			columns = append(columns, Column{melody[(i/2)%len(melody)]})
		}
	}
	return columns, nil
}

// Arpeggio cycles through the box's 1st, 3rd and 5th scale degrees in
// (string, fret) order, wrapping to fill the requested length.
func Arpeggio(root, scale string, tuning theory.Tuning, position, bars int) ([]Column, error) {
	box, err := fretboard.BoxPosition(root, scale, tuning, position)
	if err != nil {
		return nil, err
	}
	classes, err := theory.ScalePitchClasses(root, scale)
	if err != nil {
		return nil, err
	}

	degrees := theory.NewPitchClassSet([]theory.PitchClass{classes[0], classes[2%len(classes)], classes[4%len(classes)]})

	var arp []fretboard.Coordinate
	for _, c := range box {
		if degrees.Contains(c.Note) {
			arp = append(arp, c)
		}
	}
	sort.Slice(arp, func(i, j int) bool {
		if arp[i].String != arp[j].String {
			return arp[i].String < arp[j].String
		}
		return arp[i].Fret < arp[j].Fret
	})
	if len(arp) == 0 {
		return nil, nil
	}

	needed := bars * NotesPerBar
	columns := make([]Column, 0, needed)
	for i := 0; i < needed; i++ {
		columns = append(columns, Column{arp[i%len(arp)]})
	}
	return columns, nil
}

// farStringPenalty is the weight given to string jumps wider than two.
const farStringPenalty = 0.1

// RandomWalk picks one note per step, biased toward strings adjacent to
// the previous one so the result stays under the hand. The caller owns
// the random source; a fixed seed reproduces the walk exactly.
func RandomWalk(root, scale string, tuning theory.Tuning, position, bars int, rng *rand.Rand) ([]Column, error) {
	if rng == nil {
		return nil, fmt.Errorf("random pattern requires a random source")
	}

	box, err := fretboard.BoxPosition(root, scale, tuning, position)
	if err != nil {
		return nil, err
	}
	if len(box) == 0 {
		box, err = fretboard.AllPositions(root, scale, tuning, 0, 5)
		if err != nil {
			return nil, err
		}
	}
	if len(box) == 0 {
		return nil, nil
	}

	byString := groupByString(box)
	strings := make([]int, 0, len(byString))
	for str := range byString {
		strings = append(strings, str)
	}
	sort.Ints(strings)

	needed := bars * NotesPerBar
	columns := make([]Column, 0, needed)
	prev := -1
	for i := 0; i < needed; i++ {
		weights := make([]float64, len(strings))
		for j, str := range strings {
			if prev < 0 {
				weights[j] = 1
				continue
			}
			distance := abs(str - prev)
			if distance <= 2 {
				weights[j] = 1 / float64(distance+1)
			} else {
				weights[j] = farStringPenalty
			}
		}

		chosen := strings[weightedChoice(rng, weights)]
		notes := byString[chosen]
		columns = append(columns, Column{notes[rng.Intn(len(notes))]})
		prev = chosen
	}
	return columns, nil
}

// weightedChoice returns an index drawn proportionally to weights.
func weightedChoice(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// ThreeNPSRun consumes a three-notes-per-string layout in order, or
// reversed for a descending run.
func ThreeNPSRun(root, scale string, tuning theory.Tuning, position, bars int, ascending bool) ([]Column, error) {
	notes, err := fretboard.ThreeNotesPerString(root, scale, tuning, position)
	if err != nil {
		return nil, err
	}

	if !ascending {
		for i, j := 0, len(notes)-1; i < j; i, j = i+1, j-1 {
			notes[i], notes[j] = notes[j], notes[i]
		}
	}

	if needed := bars * NotesPerBar; len(notes) > needed {
		notes = notes[:needed]
	}
	return singles(notes), nil
}

// riffOffsets is the fixed power-chord riff cycle: root, minor 7th,
// root, 4th, as semitone offsets from the key root.
var riffOffsets = []int{0, 10, 0, 5}

// PowerChordRiff repeats the riff cycle as power-chord stabs on the
// bottom strings.
func PowerChordRiff(root, scale string, tuning theory.Tuning, position, bars int) ([]Column, error) {
	rootPC, err := theory.ParsePitchClass(root)
	if err != nil {
		return nil, err
	}
	if _, err := theory.ScaleIntervals(scale); err != nil {
		return nil, err
	}

	needed := bars * NotesPerBar
	columns := make([]Column, 0, needed)
	for i := 0; i < needed; i++ {
		chordRoot := rootPC.Add(riffOffsets[i%len(riffOffsets)])
		voicing, err := fretboard.PowerChordVoicing(chordRoot.String(), tuning, position)
		if err != nil {
			return nil, err
		}
		if len(voicing) > 0 {
			columns = append(columns, Column(voicing))
		}
	}
	return columns, nil
}

// ChordProgression expands a named progression into one column per
// chord. chordType "5" keeps the riff-friendly bottom-string power
// shape; anything else voices each chord with its own quality.
func ChordProgression(root, scale string, tuning theory.Tuning, progression string, position int, chordType string) ([]Column, error) {
	chords, err := theory.ProgressionChords(root, scale, progression)
	if err != nil {
		return nil, err
	}

	columns := make([]Column, 0, len(chords))
	for _, chord := range chords {
		var voicing []fretboard.Coordinate
		if chordType == "5" {
			voicing, err = fretboard.PowerChordVoicing(chord.Root, tuning, position)
		} else {
			voicing, err = fretboard.ChordVoicing(chord.Root, chord.Quality, tuning, position)
		}
		if err != nil {
			return nil, err
		}
		if len(voicing) > 0 {
			columns = append(columns, Column(voicing))
		}
	}
	return columns, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
