package audio

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/projectlavos/tabforge/internal/theory"
)

func sampleTab() string {
	return strings.Join([]string{
		"e|---------|",
		"B|---------|",
		"G|---------|",
		"D|---------|",
		"A|------3--|",
		"E|--0---1--|",
	}, "\n")
}

func TestRenderWAV_Header(t *testing.T) {
	tuning, err := theory.GetTuning("standard")
	if err != nil {
		t.Fatalf("GetTuning failed: %v", err)
	}

	data, err := RenderWAV(sampleTab(), 120, tuning, 8000)
	if err != nil {
		t.Fatalf("RenderWAV failed: %v", err)
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatal("Missing RIFF/WAVE magic")
	}
	if format := binary.LittleEndian.Uint16(data[20:]); format != 3 {
		t.Errorf("Expected IEEE float format 3, got %d", format)
	}
	if bits := binary.LittleEndian.Uint16(data[34:]); bits != 32 {
		t.Errorf("Expected 32 bits per sample, got %d", bits)
	}
	if rate := binary.LittleEndian.Uint32(data[24:]); rate != 8000 {
		t.Errorf("Expected sample rate 8000, got %d", rate)
	}

	// Two columns at 120 BPM and 8kHz: 4000 frames each.
	dataSize := binary.LittleEndian.Uint32(data[40:])
	if dataSize != 2*4000*4 {
		t.Errorf("Expected %d data bytes, got %d", 2*4000*4, dataSize)
	}
	if uint32(len(data)) != 44+dataSize {
		t.Errorf("File length %d does not match header %d", len(data), 44+dataSize)
	}
}

func TestRenderWAV_SignalPresentAndBounded(t *testing.T) {
	tuning, _ := theory.GetTuning("standard")
	data, err := RenderWAV(sampleTab(), 120, tuning, 8000)
	if err != nil {
		t.Fatalf("RenderWAV failed: %v", err)
	}

	peak := 0.0
	for i := 44; i+4 <= len(data); i += 4 {
		s := math.Abs(float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i:]))))
		if s > peak {
			peak = s
		}
	}
	if peak == 0 {
		t.Error("Rendered audio is silent")
	}
	if peak > 1.0 {
		t.Errorf("Rendered audio clips at %f", peak)
	}
}

func TestRenderWAV_Errors(t *testing.T) {
	tuning, _ := theory.GetTuning("standard")

	if _, err := RenderWAV(sampleTab(), 0, tuning, 8000); err == nil {
		t.Error("Expected error for zero tempo")
	}
	if _, err := RenderWAV("garbage", 120, tuning, 8000); err == nil {
		t.Error("Expected error for unparseable tab")
	}
}

func TestMidiToFreq(t *testing.T) {
	if f := midiToFreq(69); math.Abs(f-440.0) > 1e-9 {
		t.Errorf("A4 should be 440Hz, got %f", f)
	}
	if f := midiToFreq(40); math.Abs(f-82.407) > 0.01 {
		t.Errorf("Low E should be ~82.41Hz, got %f", f)
	}
}
