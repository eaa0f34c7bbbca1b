package drums

import "strings"

// tabRow pairs a drum line with its two-letter display label.
type tabRow struct {
	drum  string
	label string
}

// tabRows lists the drum lines in display order, top to bottom.
var tabRows = []tabRow{
	{"crash1", "CC"},
	{"ride", "RD"},
	{"hihat_closed", "HH"},
	{"snare", "SD"},
	{"tom_high", "T1"},
	{"tom_mid", "T2"},
	{"tom_low", "T3"},
	{"floor_tom", "FT"},
	{"kick", "BD"},
}

// RenderTab serializes bars into ASCII drum tab, one character per
// sixteenth step with a pipe after each bar. Lines with no hits are
// omitted.
func RenderTab(bars []Bar) string {
	lines := make(map[string][]byte, len(tabRows))
	for _, row := range tabRows {
		lines[row.drum] = nil
	}

	for _, bar := range bars {
		grid := make(map[string][]byte, len(tabRows))
		for _, row := range tabRows {
			grid[row.drum] = []byte(strings.Repeat("-", StepsPerBar))
		}

		for _, hit := range bar.Hits {
			drum := hit.Drum
			switch drum {
			case "hihat":
				drum = "hihat_closed"
			case "china", "crash2", "splash":
				// Cymbal variants share the crash line.
				drum = "crash1"
			}
			row, ok := grid[drum]
			if !ok {
				continue
			}

			pos := hit.Position - 1
			if pos < 0 || pos >= StepsPerBar {
				continue
			}
			row[pos] = hitSymbol(drum, hit.Velocity)
		}

		for _, row := range tabRows {
			lines[row.drum] = append(lines[row.drum], grid[row.drum]...)
			lines[row.drum] = append(lines[row.drum], '|')
		}
	}

	var out []string
	for _, row := range tabRows {
		line := string(lines[row.drum])
		if strings.Trim(line, "-|") == "" {
			continue
		}
		out = append(out, row.label+"|"+line)
	}
	return strings.Join(out, "\n")
}

func hitSymbol(drum string, velocity int) byte {
	switch {
	case drum == "hihat_closed", drum == "ride":
		return 'x'
	case drum == "snare" && velocity < VelocitySoft:
		return 'g'
	case drum == "crash1":
		return 'X'
	default:
		return 'o'
	}
}
