// Package drums generates deterministic drum patterns as a rhythm-track
// companion to the guitar generator. Patterns are fixed templates over a
// sixteenth-note grid; style interpretation only picks which template.
package drums

import (
	"sort"
	"strings"
)

// General MIDI drum note numbers (channel 10).
var DrumMap = map[string]int{
	"kick":         36,
	"snare":        38,
	"snare_rim":    37,
	"hihat_closed": 42,
	"hihat_open":   46,
	"hihat_pedal":  44,
	"ride":         51,
	"ride_bell":    53,
	"crash1":       49,
	"crash2":       57,
	"tom_high":     50,
	"tom_mid":      47,
	"tom_low":      45,
	"floor_tom":    43,
	"china":        52,
	"splash":       55,
}

// Default velocities.
const (
	VelocityAccent = 127
	VelocityNormal = 100
	VelocityGhost  = 50
	VelocitySoft   = 70

	crashVelocity = 120

	// StepsPerBar is the sixteenth-note grid resolution.
	StepsPerBar = 16
)

// Hit is a single drum hit on the sixteenth grid. Position is 1-based,
// 1..16.
type Hit struct {
	Position int    `json:"position"`
	Drum     string `json:"drum"`
	Velocity int    `json:"velocity"`
}

// Bar is one bar of hits.
type Bar struct {
	Hits []Hit `json:"hits"`
}

// template maps drum names to grid positions. A "_ghost" suffix means
// the hit lands at ghost velocity on the base drum.
type template map[string][]int

var patterns = map[string]template{
	// Kick on 1 and 3, snare on 2 and 4, eighth-note hats.
	"basic_rock": {
		"kick":  {1, 9},
		"snare": {5, 13},
		"hihat": {1, 3, 5, 7, 9, 11, 13, 15},
	},
	"metal_double_bass": {
		"kick":  {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		"snare": {5, 13},
		"hihat": {1, 3, 5, 7, 9, 11, 13, 15},
	},
	"blast_beat": {
		"kick":  {1, 3, 5, 7, 9, 11, 13, 15},
		"snare": {2, 4, 6, 8, 10, 12, 14, 16},
		"ride":  {1, 3, 5, 7, 9, 11, 13, 15},
	},
	"half_time": {
		"kick":  {1, 11},
		"snare": {9},
		"hihat": {1, 5, 9, 13},
	},
	"djent_groove": {
		"kick":        {1, 4, 7, 10, 13},
		"snare":       {5, 13},
		"snare_ghost": {3, 7, 11, 15},
		"hihat":       {1, 3, 5, 7, 9, 11, 13, 15},
		"china":       {1},
	},
	// 5-over-4 kick placement.
	"polyrhythmic": {
		"kick":  {1, 4, 7, 11, 14},
		"snare": {5, 13},
		"hihat": {1, 3, 5, 7, 9, 11, 13, 15},
		"china": {1, 9},
	},
	"thrash_gallop": {
		"kick":  {1, 3, 4, 9, 11, 12},
		"snare": {5, 13},
		"hihat": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	},
	"groove_metal": {
		"kick":        {1, 4, 9, 12},
		"snare":       {5, 13},
		"snare_ghost": {3, 11},
		"hihat":       {1, 3, 5, 7, 9, 11, 13, 15},
		"china":       {1},
	},
	"progressive_7_8": {
		"kick":  {1, 7, 11},
		"snare": {5, 13},
		"hihat": {1, 3, 5, 7, 9, 11, 13},
	},
	"tribal": {
		"kick":      {1, 5, 9, 13},
		"snare":     {9},
		"tom_low":   {3, 7, 11, 15},
		"floor_tom": {1},
		"ride":      {1, 5, 9, 13},
	},
	// Shuffle triplet feel approximated on the sixteenth grid.
	"shuffle": {
		"kick":  {1, 9},
		"snare": {5, 13},
		"hihat": {1, 4, 5, 8, 9, 12, 13, 16},
	},
	"punk_fast": {
		"kick":  {1, 5, 9, 13},
		"snare": {5, 13},
		"hihat": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	},
}

// PatternNames returns all template names sorted.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// styleKeywords maps style vocabulary to template names. Order matters
// for overlapping keywords, so lookups walk this slice, not a map.
var styleKeywords = []struct {
	keyword string
	pattern string
}{
	{"blast beat", "blast_beat"},
	{"blast", "blast_beat"},
	{"double bass", "metal_double_bass"},
	{"double kick", "metal_double_bass"},
	{"half time", "half_time"},
	{"halftime", "half_time"},
	{"djent", "djent_groove"},
	{"meshuggah", "polyrhythmic"},
	{"polyrhythmic", "polyrhythmic"},
	{"poly", "polyrhythmic"},
	{"thrash", "thrash_gallop"},
	{"gallop", "thrash_gallop"},
	{"lamb of god", "groove_metal"},
	{"groove", "groove_metal"},
	{"tribal", "tribal"},
	{"tool", "tribal"},
	{"shuffle", "shuffle"},
	{"swing", "shuffle"},
	{"punk", "punk_fast"},
	{"fast", "punk_fast"},
	{"metal", "metal_double_bass"},
	{"progressive", "progressive_7_8"},
	{"odd", "progressive_7_8"},
	{"rock", "basic_rock"},
	{"basic", "basic_rock"},
}

// GenerateBar expands one template into hits. Unknown names fall back
// to basic_rock.
func GenerateBar(patternName string) Bar {
	tmpl, ok := patterns[patternName]
	if !ok {
		tmpl = patterns["basic_rock"]
	}

	drums := make([]string, 0, len(tmpl))
	for drum := range tmpl {
		drums = append(drums, drum)
	}
	sort.Strings(drums)

	var bar Bar
	for _, drum := range drums {
		target := drum
		velocity := VelocityNormal
		switch drum {
		case "snare_ghost":
			target = "snare"
			velocity = VelocityGhost
		case "hihat":
			target = "hihat_closed"
		}
		for _, pos := range tmpl[drum] {
			bar.Hits = append(bar.Hits, Hit{Position: pos, Drum: target, Velocity: velocity})
		}
	}
	return bar
}

// GeneratePattern produces bars bars of the template with the usual
// arrangement touches: a crash on the downbeat of bar one (and every
// fourth bar after), and a tom fill closing the last bar.
func GeneratePattern(patternName string, bars int, addCrashes, addFills bool) []Bar {
	if bars <= 0 {
		bars = 1
	}

	result := make([]Bar, 0, bars)
	for i := 0; i < bars; i++ {
		bar := GenerateBar(patternName)

		if addCrashes && (i == 0 || i%4 == 0) {
			bar.Hits = append(bar.Hits, Hit{Position: 1, Drum: "crash1", Velocity: crashVelocity})
		}
		if addFills && bars > 1 && i == bars-1 {
			bar = addFill(bar)
		}

		result = append(result, bar)
	}
	return result
}

// addFill replaces the last beat with a descending tom run.
func addFill(bar Bar) Bar {
	kept := bar.Hits[:0]
	for _, h := range bar.Hits {
		if h.Position >= 13 && (h.Drum == "hihat" || h.Drum == "hihat_closed") {
			continue
		}
		kept = append(kept, h)
	}
	bar.Hits = append(kept,
		Hit{Position: 13, Drum: "tom_high", Velocity: 110},
		Hit{Position: 14, Drum: "tom_mid", Velocity: 105},
		Hit{Position: 15, Drum: "tom_low", Velocity: 100},
		Hit{Position: 16, Drum: "floor_tom", Velocity: 110},
	)
	return bar
}

// PatternFromStyle maps free-form style text to a template name.
func PatternFromStyle(style string) string {
	lower := strings.ToLower(style)
	for _, entry := range styleKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.pattern
		}
	}
	return "basic_rock"
}
