package drums

import (
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	ticksPerStep    = ticksPerQuarter / 4
	hitLengthTicks  = ticksPerStep / 2

	// GM percussion channel (0-indexed).
	drumChannel = 9
)

// WriteSMF writes bars as a single-track SMF on the GM percussion
// channel, sixteenth-note grid at the given tempo.
func WriteSMF(w io.Writer, bars []Bar, title string, tempoBPM float64) error {
	if len(bars) == 0 {
		return fmt.Errorf("no bars to write")
	}

	type event struct {
		tick uint32
		off  bool
		key  uint8
		vel  uint8
	}

	var events []event
	for barIdx, bar := range bars {
		barStart := uint32(barIdx) * StepsPerBar * ticksPerStep
		for _, hit := range bar.Hits {
			note, ok := DrumMap[hit.Drum]
			if !ok {
				continue
			}
			start := barStart + uint32(hit.Position-1)*ticksPerStep
			events = append(events,
				event{tick: start, key: uint8(note), vel: uint8(hit.Velocity)},
				event{tick: start + hitLengthTicks, off: true, key: uint8(note)},
			)
		}
	}
	if len(events) == 0 {
		return fmt.Errorf("no mapped drum hits to write")
	}

	// Stable order: by tick, offs before ons at the same tick.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(title))
	track.Add(0, smf.MetaTempo(tempoBPM))
	track.Add(0, smf.MetaInstrument("Drums"))

	var lastTick uint32
	for _, ev := range events {
		delta := ev.tick - lastTick
		lastTick = ev.tick
		if ev.off {
			track.Add(delta, smf.Message(midi.NoteOff(drumChannel, ev.key)))
		} else {
			track.Add(delta, smf.Message(midi.NoteOn(drumChannel, ev.key, ev.vel)))
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
