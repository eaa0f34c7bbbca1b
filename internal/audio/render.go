// Package audio renders tablature to WAV for quick listening checks.
// The synthesis is a plain decaying-harmonic pluck, not a guitar model;
// it exists so a generated riff can be auditioned without a DAW.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/projectlavos/tabforge/internal/tab"
	"github.com/projectlavos/tabforge/internal/theory"
)

const (
	// DefaultSampleRate is used when the caller passes 0.
	DefaultSampleRate = 44100

	channels      = 1
	peakAmplitude = 0.35
	decayPerSec   = 3.0
)

// harmonicGains shape the pluck timbre; fundamental plus three decaying
// overtones.
var harmonicGains = []float64{1.0, 0.5, 0.25, 0.12}

// RenderWAV parses tabText, synthesizes one quarter note per column at
// tempoBPM and returns a complete mono 32-bit float WAV file.
func RenderWAV(tabText string, tempoBPM float64, tuning theory.Tuning, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if tempoBPM <= 0 {
		return nil, fmt.Errorf("tempo must be positive, got %v", tempoBPM)
	}

	columns, err := tab.Parse(tabText)
	if err != nil {
		return nil, fmt.Errorf("parse tab: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("tab contains no notes")
	}

	beatSeconds := 60.0 / tempoBPM
	framesPerBeat := int(float64(sampleRate) * beatSeconds)
	samples := make([]float32, framesPerBeat*len(columns))

	for colIdx, col := range columns {
		offset := colIdx * framesPerBeat
		for _, note := range col.Notes {
			midiPitch := tuning.AbsolutePitch(note.String, note.Fret)
			freq := midiToFreq(midiPitch)
			addPluck(samples[offset:offset+framesPerBeat], freq, sampleRate, len(col.Notes))
		}
	}

	return encodeWAVFloat32LE(samples, sampleRate, channels), nil
}

// midiToFreq converts a MIDI note number to Hz (A4 = 69 = 440Hz).
func midiToFreq(midi int) float64 {
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}

// addPluck mixes one decaying harmonic pluck into buf. voices scales the
// level down so chords do not clip.
func addPluck(buf []float32, freq float64, sampleRate, voices int) {
	amp := peakAmplitude / float64(voices)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-decayPerSec * t)
		var sample float64
		for h, gain := range harmonicGains {
			sample += gain * math.Sin(2*math.Pi*freq*float64(h+1)*t)
		}
		buf[i] += float32(amp * envelope * sample)
	}
}

// encodeWAVFloat32LE wraps samples in a 44-byte RIFF/WAVE header
// (format 3, IEEE float).
func encodeWAVFloat32LE(samples []float32, sampleRate, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}
