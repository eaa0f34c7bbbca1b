package style

import (
	"regexp"
	"strings"
)

// keywordRule maps a style keyword to the parameters it implies. Only
// zero-valued fields of the result are filled, so earlier rules win.
type keywordRule struct {
	keyword string
	scale   string
	pattern string
	tempo   int
	tuning  string
}

// keywordRules is ordered: more specific genres before broad ones.
var keywordRules = []keywordRule{
	{keyword: "shred", scale: "harmonic_minor", pattern: "3nps", tempo: 180},
	{keyword: "neoclassical", scale: "harmonic_minor", pattern: "3nps", tempo: 170},
	{keyword: "metal", scale: "phrygian", pattern: "pedal", tempo: 160},
	{keyword: "aggressive", scale: "phrygian", pattern: "pedal", tempo: 150},
	{keyword: "heavy", scale: "minor", pattern: "pedal", tempo: 140},
	{keyword: "blues", scale: "blues", pattern: "pedal", tempo: 100},
	{keyword: "soulful", scale: "pentatonic_minor", pattern: "random", tempo: 90},
	{keyword: "jazz", scale: "dorian", pattern: "arpeggio", tempo: 120},
	{keyword: "funk", scale: "mixolydian", pattern: "pedal", tempo: 110},
	{keyword: "country", scale: "major", pattern: "ascending", tempo: 130},
	{keyword: "rock", scale: "pentatonic_minor", pattern: "ascending", tempo: 130},
	{keyword: "chill", scale: "lydian", pattern: "arpeggio", tempo: 80},
	{keyword: "ambient", scale: "major", pattern: "arpeggio", tempo: 75},
	{keyword: "drop c", tuning: "drop_c"},
	{keyword: "drop d", tuning: "drop_d"},
	{keyword: "downtuned", tuning: "drop_d"},
	{keyword: "half step", tuning: "half_step_down"},
	{keyword: "eb tuning", tuning: "half_step_down"},
	{keyword: "slow", tempo: 80},
	{keyword: "fast", tempo: 170},
}

// rootPattern matches an explicit key mention like "in E", "in F#" or
// "in A minor". A word boundary after the accidental would backtrack
// ("in F#" matching just "F"), so the non-letter terminator is explicit.
var rootPattern = regexp.MustCompile(`\bin ([A-Ga-g][#b]?)($|[^a-zA-Z])`)

// KeywordInterpret is the offline interpretation path: a first-match
// table over the same style vocabulary the model prompt teaches. Good
// enough for demos and tests, and the reason the interpret endpoint
// works without any API key.
func KeywordInterpret(stylePrompt string) Params {
	p := Defaults()
	p.Reasoning = "Keyword interpretation (no LLM provider configured)"
	lower := strings.ToLower(stylePrompt)

	scaleSet, patternSet, tempoSet, tuningSet := false, false, false, false
	for _, rule := range keywordRules {
		if !strings.Contains(lower, rule.keyword) {
			continue
		}
		if rule.scale != "" && !scaleSet {
			p.Scale = rule.scale
			scaleSet = true
		}
		if rule.pattern != "" && !patternSet {
			p.Pattern = rule.pattern
			patternSet = true
		}
		if rule.tempo != 0 && !tempoSet {
			p.Tempo = rule.tempo
			tempoSet = true
		}
		if rule.tuning != "" && !tuningSet {
			p.Tuning = rule.tuning
			tuningSet = true
		}
	}

	if m := rootPattern.FindStringSubmatch(stylePrompt); m != nil {
		root := strings.ToUpper(m[1][:1])
		if len(m[1]) > 1 {
			if m[1][1] == 'b' {
				// Flats are stored as the enharmonic sharp.
				root = flatToSharp(root)
			} else {
				root += "#"
			}
		}
		p.Root = root
	}

	return p
}

func flatToSharp(natural string) string {
	switch natural {
	case "C":
		return "B"
	case "D":
		return "C#"
	case "E":
		return "D#"
	case "F":
		return "E"
	case "G":
		return "F#"
	case "A":
		return "G#"
	case "B":
		return "A#"
	}
	return natural
}
