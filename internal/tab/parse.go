package tab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/projectlavos/tabforge/internal/theory"
)

// ParsedNote is one fret number recovered from tab text.
type ParsedNote struct {
	String int // 0 = low string, matching fretboard coordinates
	Fret   int
}

// ParsedColumn groups notes that share a character offset, i.e. sound
// together.
type ParsedColumn struct {
	Offset int
	Notes  []ParsedNote
}

// Parse reads six-line ASCII tablature back into columns. Notes are
// matched across strings by character offset, which is exact because the
// renderer uses fixed-width slots. The input must have exactly six tab
// lines; labels and bar pipes are ignored.
func Parse(tabText string) ([]ParsedColumn, error) {
	lines := strings.Split(strings.TrimSpace(tabText), "\n")
	if len(lines) != theory.NumStrings {
		return nil, fmt.Errorf("expected %d tab lines, got %d", theory.NumStrings, len(lines))
	}

	type positioned struct {
		fret   int
		offset int
	}

	perString := make([][]positioned, theory.NumStrings)
	offsets := make(map[int]bool)

	for row, line := range lines {
		content := stripLabel(line)
		str := theory.NumStrings - 1 - row // top line is the high string

		i := 0
		for i < len(content) {
			if content[i] < '0' || content[i] > '9' {
				i++
				continue
			}
			start := i
			fret := 0
			for i < len(content) && content[i] >= '0' && content[i] <= '9' {
				fret = fret*10 + int(content[i]-'0')
				i++
			}
			perString[str] = append(perString[str], positioned{fret: fret, offset: start})
			offsets[start] = true
		}
	}

	sorted := make([]int, 0, len(offsets))
	for off := range offsets {
		sorted = append(sorted, off)
	}
	sort.Ints(sorted)

	columns := make([]ParsedColumn, 0, len(sorted))
	for _, off := range sorted {
		col := ParsedColumn{Offset: off}
		for str := 0; str < theory.NumStrings; str++ {
			for _, note := range perString[str] {
				if note.offset == off {
					col.Notes = append(col.Notes, ParsedNote{String: str, Fret: note.fret})
				}
			}
		}
		if len(col.Notes) > 0 {
			columns = append(columns, col)
		}
	}
	return columns, nil
}

// stripLabel removes the leading string-name label ("e|", "B|", ...)
// when present.
func stripLabel(line string) string {
	if len(line) >= 2 && line[1] == '|' && strings.ContainsAny(line[:1], "eEBGDA") {
		return line[2:]
	}
	return line
}

// Frets flattens the parse into every fret number found, in column
// order. Used by playability checks.
func Frets(columns []ParsedColumn) []int {
	var frets []int
	for _, col := range columns {
		for _, note := range col.Notes {
			frets = append(frets, note.Fret)
		}
	}
	return frets
}
