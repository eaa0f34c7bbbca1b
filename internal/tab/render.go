// Package tab serializes pattern columns into fixed-width ASCII
// tablature and parses that text back into coordinates. The parser is
// deliberately independent of the renderer's internal state so
// downstream consumers (export, audio, validation) all read the same
// text the same way.
package tab

import (
	"fmt"
	"strings"

	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/theory"
)

// NotesPerMeasure is the default column count between bar dividers.
const NotesPerMeasure = 4

// stringLabels are the display labels, high string first.
var stringLabels = [theory.NumStrings]string{"e", "B", "G", "D", "A", "E"}

// Render serializes columns into six tab lines, high string on top.
// Every column occupies a fixed four-character slot; a bar divider is
// inserted every notesPerMeasure columns and each line ends with a
// closing bar.
func Render(columns []pattern.Column, notesPerMeasure int) string {
	if notesPerMeasure <= 0 {
		notesPerMeasure = NotesPerMeasure
	}

	var lines [theory.NumStrings]strings.Builder
	for colIdx, column := range columns {
		if colIdx > 0 && colIdx%notesPerMeasure == 0 {
			for i := range lines {
				lines[i].WriteString("-|--")
			}
		}

		frets := make(map[int]int, len(column))
		for _, note := range column {
			frets[note.String] = note.Fret
		}

		for row := 0; row < theory.NumStrings; row++ {
			str := theory.NumStrings - 1 - row // high string renders first
			fret, ok := frets[str]
			switch {
			case !ok:
				lines[row].WriteString("----")
			case fret >= 10:
				lines[row].WriteString(fmt.Sprintf("-%d-", fret))
			default:
				lines[row].WriteString(fmt.Sprintf("--%d-", fret))
			}
		}
	}

	out := make([]string, theory.NumStrings)
	for row := range lines {
		out[row] = fmt.Sprintf("%s|%s-|", stringLabels[row], lines[row].String())
	}
	return strings.Join(out, "\n")
}
