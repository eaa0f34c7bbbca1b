package pattern

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/projectlavos/tabforge/internal/theory"
)

func standardTuning(t *testing.T) theory.Tuning {
	t.Helper()
	tuning, err := theory.GetTuning("standard")
	if err != nil {
		t.Fatalf("GetTuning failed: %v", err)
	}
	return tuning
}

func TestAscendingRun(t *testing.T) {
	tuning := standardTuning(t)
	columns, err := AscendingRun("E", "minor", tuning, 1, 4)
	if err != nil {
		t.Fatalf("AscendingRun failed: %v", err)
	}
	if len(columns) != 4*NotesPerBar {
		t.Fatalf("Expected %d notes, got %d", 4*NotesPerBar, len(columns))
	}

	// Single notes only, ordered low string to high, ascending frets
	// within a string.
	for i, col := range columns {
		if len(col) != 1 {
			t.Fatalf("Column %d has %d notes, expected 1", i, len(col))
		}
		if i == 0 {
			continue
		}
		prev, cur := columns[i-1][0], col[0]
		if cur.String < prev.String {
			t.Errorf("Column %d drops from string %d to %d", i, prev.String, cur.String)
		}
		if cur.String == prev.String && cur.Fret <= prev.Fret {
			t.Errorf("Column %d not ascending on string %d: fret %d after %d",
				i, cur.String, cur.Fret, prev.Fret)
		}
	}
}

func TestAscendingRun_TruncatesToBars(t *testing.T) {
	tuning := standardTuning(t)
	columns, err := AscendingRun("E", "minor", tuning, 1, 1)
	if err != nil {
		t.Fatalf("AscendingRun failed: %v", err)
	}
	if len(columns) != NotesPerBar {
		t.Errorf("Expected %d notes for 1 bar, got %d", NotesPerBar, len(columns))
	}
}

func TestDescendingRun(t *testing.T) {
	tuning := standardTuning(t)
	columns, err := DescendingRun("E", "minor", tuning, 1, 2)
	if err != nil {
		t.Fatalf("DescendingRun failed: %v", err)
	}
	if len(columns) == 0 {
		t.Fatal("Expected a non-empty run")
	}

	first := columns[0][0]
	if first.String != theory.NumStrings-1 {
		t.Errorf("Descending run should start on the high string, got string %d", first.String)
	}
	for i := 1; i < len(columns); i++ {
		prev, cur := columns[i-1][0], columns[i][0]
		if cur.String > prev.String {
			t.Errorf("Column %d climbs from string %d to %d", i, prev.String, cur.String)
		}
	}
}

func TestPedalTone_AlternatesRootAnchor(t *testing.T) {
	tuning := standardTuning(t)
	columns, err := PedalTone("E", "minor", tuning, 1, 2)
	if err != nil {
		t.Fatalf("PedalTone failed: %v", err)
	}
	if len(columns) != 2*NotesPerBar {
		t.Fatalf("Expected %d notes, got %d", 2*NotesPerBar, len(columns))
	}

	pedal := columns[0][0]
	if !pedal.IsRoot {
		t.Errorf("Pedal note should be a root, got %s", pedal.NoteName)
	}
	for i := 0; i < len(columns); i += 2 {
		if columns[i][0] != pedal {
			t.Errorf("Even step %d should repeat the pedal note", i)
		}
	}
	for i := 1; i < len(columns); i += 2 {
		if columns[i][0].String <= pedal.String {
			t.Errorf("Melody note at step %d should sit above the pedal string", i)
		}
	}
}

func TestArpeggio_ChordTonesOnly(t *testing.T) {
	tuning := standardTuning(t)
	columns, err := Arpeggio("A", "minor", tuning, 1, 2)
	if err != nil {
		t.Fatalf("Arpeggio failed: %v", err)
	}
	if len(columns) != 2*NotesPerBar {
		t.Fatalf("Expected %d notes, got %d", 2*NotesPerBar, len(columns))
	}

	// A minor arpeggio over the minor scale: degrees 1, 3, 5 = A, C, E.
	allowed := map[string]bool{"A": true, "C": true, "E": true}
	for i, col := range columns {
		if !allowed[col[0].NoteName] {
			t.Errorf("Column %d sounds %s, expected a chord tone", i, col[0].NoteName)
		}
	}
}

func TestRandomWalk_SeedReproducible(t *testing.T) {
	tuning := standardTuning(t)

	first, err := RandomWalk("E", "minor", tuning, 1, 4, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RandomWalk failed: %v", err)
	}
	second, err := RandomWalk("E", "minor", tuning, 1, 4, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("RandomWalk failed: %v", err)
	}

	if len(first) != 4*NotesPerBar {
		t.Fatalf("Expected %d notes, got %d", 4*NotesPerBar, len(first))
	}
	if len(first) != len(second) {
		t.Fatalf("Same seed produced different lengths: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i][0] != second[i][0] {
			t.Errorf("Same seed diverged at column %d: %+v vs %+v", i, first[i][0], second[i][0])
		}
	}
}

func TestRandomWalk_RequiresSource(t *testing.T) {
	tuning := standardTuning(t)
	if _, err := RandomWalk("E", "minor", tuning, 1, 4, nil); err == nil {
		t.Error("Expected error without a random source")
	}
}

func TestPowerChordRiff(t *testing.T) {
	tuning := standardTuning(t)
	columns, err := PowerChordRiff("E", "minor", tuning, 1, 2)
	if err != nil {
		t.Fatalf("PowerChordRiff failed: %v", err)
	}
	if len(columns) != 2*NotesPerBar {
		t.Fatalf("Expected %d stabs, got %d", 2*NotesPerBar, len(columns))
	}

	for i, col := range columns {
		if len(col) < 2 {
			t.Errorf("Stab %d has %d notes, expected a chord", i, len(col))
		}
		for _, c := range col {
			if c.String > 2 {
				t.Errorf("Stab %d uses string %d, expected bottom three only", i, c.String)
			}
		}
	}

	// The riff cycle is root, b7, root, 4th.
	if columns[0][0].NoteName != "E" {
		t.Errorf("First stab should be on E, got %s", columns[0][0].NoteName)
	}
	if columns[1][0].NoteName != "D" {
		t.Errorf("Second stab should be on D, got %s", columns[1][0].NoteName)
	}
}

func TestChordProgression(t *testing.T) {
	tuning := standardTuning(t)
	columns, err := ChordProgression("C", "major", tuning, "pop_4chord", 1, "5")
	if err != nil {
		t.Fatalf("ChordProgression failed: %v", err)
	}
	if len(columns) != 4 {
		t.Fatalf("Expected 4 chords, got %d", len(columns))
	}
	for i, col := range columns {
		if len(col) == 0 {
			t.Errorf("Chord %d is empty", i)
		}
	}
}

func TestGenerate_Dispatch(t *testing.T) {
	tuning := standardTuning(t)

	for _, name := range Names() {
		req := Request{
			Root:     "E",
			Scale:    "minor",
			Pattern:  name,
			Bars:     2,
			Position: 1,
			Tuning:   tuning,
		}
		if name == "random" {
			req.Rand = rand.New(rand.NewSource(1))
		}

		columns, err := Generate(req)
		if err != nil {
			t.Errorf("Generate(%s) failed: %v", name, err)
			continue
		}
		if len(columns) == 0 {
			t.Errorf("Generate(%s) produced no columns", name)
		}
	}
}

func TestGenerate_UnknownPattern(t *testing.T) {
	tuning := standardTuning(t)
	_, err := Generate(Request{Root: "E", Scale: "minor", Pattern: "moonwalk", Bars: 2, Position: 1, Tuning: tuning})
	if !errors.Is(err, theory.ErrUnknownPattern) {
		t.Errorf("Expected ErrUnknownPattern, got %v", err)
	}
}

func TestGenerate_3NPSShortScale(t *testing.T) {
	tuning := standardTuning(t)
	_, err := Generate(Request{Root: "A", Scale: "pentatonic_minor", Pattern: "3nps", Bars: 2, Position: 1, Tuning: tuning})
	if !errors.Is(err, theory.ErrInvalidScaleForPattern) {
		t.Errorf("Expected ErrInvalidScaleForPattern, got %v", err)
	}
}
