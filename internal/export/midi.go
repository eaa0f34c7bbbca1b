// Package export turns rendered tablature into standard MIDI files. It
// reparses the tab text rather than consuming generator output, so the
// exported notes are exactly what the tab says.
package export

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/projectlavos/tabforge/internal/tab"
	"github.com/projectlavos/tabforge/internal/theory"
)

const (
	ticksPerQuarter = 960
	guitarChannel   = 0
	// GM program 30: Overdriven Guitar (0-indexed as 29)
	overdrivenGuitarProgram = 29
	noteVelocity            = 100
)

// WriteSMF parses tabText and writes a single-track type-0 SMF to w.
// Each tab column becomes one quarter note (or chord) at the given
// tempo; pitches come from the tuning's absolute base pitches.
func WriteSMF(w io.Writer, tabText, title string, tempoBPM float64, tuning theory.Tuning) error {
	columns, err := tab.Parse(tabText)
	if err != nil {
		return fmt.Errorf("parse tab: %w", err)
	}
	if len(columns) == 0 {
		return fmt.Errorf("tab contains no notes")
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(title))
	track.Add(0, smf.MetaTempo(tempoBPM))
	track.Add(0, smf.MetaInstrument("Guitar"))
	track.Add(0, smf.Message(midi.ProgramChange(guitarChannel, overdrivenGuitarProgram)))

	for _, col := range columns {
		keys := make([]uint8, 0, len(col.Notes))
		for _, note := range col.Notes {
			pitch := tuning.AbsolutePitch(note.String, note.Fret)
			if pitch < 0 || pitch > 127 {
				return fmt.Errorf("string %d fret %d maps to MIDI %d, out of range", note.String, note.Fret, pitch)
			}
			keys = append(keys, uint8(pitch))
		}

		for _, key := range keys {
			track.Add(0, smf.Message(midi.NoteOn(guitarChannel, key, noteVelocity)))
		}
		for i, key := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = ticksPerQuarter
			}
			track.Add(delta, smf.Message(midi.NoteOff(guitarChannel, key)))
		}
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return fmt.Errorf("add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write smf: %w", err)
	}
	return nil
}
