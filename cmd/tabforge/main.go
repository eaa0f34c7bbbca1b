// Command tabforge is the offline front end to the tab engine: generate
// riffs, interpret style prompts and validate tabs without running the
// HTTP server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/projectlavos/tabforge/internal/audio"
	"github.com/projectlavos/tabforge/internal/config"
	"github.com/projectlavos/tabforge/internal/drums"
	"github.com/projectlavos/tabforge/internal/export"
	"github.com/projectlavos/tabforge/internal/llm"
	"github.com/projectlavos/tabforge/internal/pattern"
	"github.com/projectlavos/tabforge/internal/style"
	"github.com/projectlavos/tabforge/internal/tab"
	"github.com/projectlavos/tabforge/internal/theory"
	"github.com/projectlavos/tabforge/internal/validate"
)

var (
	flagRoot        string
	flagScale       string
	flagPattern     string
	flagBars        int
	flagPosition    int
	flagTuning      string
	flagProgression string
	flagTempo       int
	flagSeed        int64
	flagMIDIOut     string
	flagWAVOut      string

	flagModel string

	flagTabFile string

	flagDrumPattern string
	flagDrumStyle   string
	flagNoCrashes   bool
	flagNoFills     bool
)

var rootCmd = &cobra.Command{
	Use:   "tabforge",
	Short: "Deterministic guitar tab generator",
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tab from explicit parameters",
	RunE:  runGenerate,
}

var interpretCmd = &cobra.Command{
	Use:   "interpret [style description]",
	Short: "Turn a natural language style prompt into a tab",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInterpret,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Re-check an existing tab file against its parameters",
	RunE:  runValidate,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Generate and validate every root/scale/pattern/position combination",
	RunE:  runSweep,
}

var drumsCmd = &cobra.Command{
	Use:   "drums",
	Short: "Generate a drum pattern as ASCII tab or MIDI",
	RunE:  runDrums,
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, validateCmd, sweepCmd} {
		cmd.Flags().StringVar(&flagRoot, "root", "E", "root note (sharps, e.g. F#)")
		cmd.Flags().StringVar(&flagScale, "scale", "minor", "scale name")
	}
	generateCmd.Flags().StringVar(&flagPattern, "pattern", "ascending", "pattern name")
	generateCmd.Flags().IntVar(&flagBars, "bars", 4, "number of bars")
	generateCmd.Flags().IntVar(&flagPosition, "position", 1, "fretboard position (1-5)")
	generateCmd.Flags().StringVar(&flagTuning, "tuning", "standard", "tuning name")
	generateCmd.Flags().StringVar(&flagProgression, "progression", "", "progression name (progression pattern)")
	generateCmd.Flags().IntVar(&flagTempo, "tempo", 120, "tempo in BPM (exports)")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (random pattern; 0 = time-based)")
	generateCmd.Flags().StringVar(&flagMIDIOut, "midi", "", "also write a .mid file")
	generateCmd.Flags().StringVar(&flagWAVOut, "wav", "", "also write a .wav file")

	interpretCmd.Flags().StringVar(&flagModel, "model", "", "override the interpreter model")

	validateCmd.Flags().StringVar(&flagTabFile, "tab", "", "path to a tab text file (required)")
	validateCmd.Flags().StringVar(&flagPattern, "pattern", "ascending", "pattern the tab claims to be")
	validateCmd.Flags().StringVar(&flagTuning, "tuning", "standard", "tuning name")
	validateCmd.Flags().IntVar(&flagBars, "bars", 0, "bars originally requested")

	sweepCmd.Flags().IntVar(&flagBars, "bars", 4, "bars per combination")

	drumsCmd.Flags().StringVar(&flagDrumPattern, "pattern", "", "drum pattern name")
	drumsCmd.Flags().StringVar(&flagDrumStyle, "style", "", "free-form style text")
	drumsCmd.Flags().IntVar(&flagBars, "bars", 4, "number of bars")
	drumsCmd.Flags().IntVar(&flagTempo, "tempo", 120, "tempo in BPM")
	drumsCmd.Flags().StringVar(&flagMIDIOut, "midi", "", "also write a .mid file")
	drumsCmd.Flags().BoolVar(&flagNoCrashes, "no-crashes", false, "skip crash accents")
	drumsCmd.Flags().BoolVar(&flagNoFills, "no-fills", false, "skip the closing fill")

	rootCmd.AddCommand(generateCmd, interpretCmd, validateCmd, sweepCmd, drumsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildColumns(root, scaleName, patternName string, bars, position int, tuning theory.Tuning, progression string, seed int64) ([]pattern.Column, error) {
	req := pattern.Request{
		Root:        root,
		Scale:       scaleName,
		Pattern:     patternName,
		Bars:        bars,
		Position:    position,
		Tuning:      tuning,
		Progression: progression,
	}
	if patternName == "random" {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		req.Rand = rand.New(rand.NewSource(seed))
	}
	return pattern.Generate(req)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tuning, err := theory.GetTuning(flagTuning)
	if err != nil {
		return err
	}
	columns, err := buildColumns(flagRoot, flagScale, flagPattern, flagBars, flagPosition, tuning, flagProgression, flagSeed)
	if err != nil {
		return err
	}
	if len(columns) == 0 {
		return fmt.Errorf("no notes found for %s %s at position %d", flagRoot, flagScale, flagPosition)
	}

	rendered := tab.Render(columns, tab.NotesPerMeasure)
	fmt.Println(rendered)

	report := validate.Check(rendered, flagRoot, flagScale, flagPattern, flagTuning, flagBars)
	if !report.Passed {
		fmt.Fprintf(os.Stderr, "⚠️  validation: %s\n", summarize(report))
	}

	if flagMIDIOut != "" {
		f, err := os.Create(flagMIDIOut)
		if err != nil {
			return err
		}
		defer f.Close()
		title := fmt.Sprintf("%s %s %s", flagRoot, flagScale, flagPattern)
		if err := export.WriteSMF(f, rendered, title, float64(flagTempo), tuning); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", flagMIDIOut)
	}
	if flagWAVOut != "" {
		wav, err := audio.RenderWAV(rendered, float64(flagTempo), tuning, 0)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagWAVOut, wav, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", flagWAVOut)
	}
	return nil
}

func runInterpret(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	model := flagModel
	if model == "" {
		model = cfg.InterpreterModel
	}

	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	interpreter := style.NewInterpreter(factory, model)

	prompt := ""
	for i, arg := range args {
		if i > 0 {
			prompt += " "
		}
		prompt += arg
	}

	params, _, err := interpreter.Interpret(context.Background(), prompt)
	if err != nil {
		return err
	}

	out, _ := json.MarshalIndent(params, "", "  ")
	fmt.Fprintln(os.Stderr, string(out))

	tuning, err := theory.GetTuning(params.Tuning)
	if err != nil {
		return err
	}
	columns, err := buildColumns(params.Root, params.Scale, params.Pattern, 4, params.Position, tuning, "", 0)
	if err != nil {
		return err
	}
	fmt.Println(tab.Render(columns, tab.NotesPerMeasure))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	if flagTabFile == "" {
		return fmt.Errorf("--tab is required")
	}
	text, err := os.ReadFile(flagTabFile)
	if err != nil {
		return err
	}

	report := validate.Check(string(text), flagRoot, flagScale, flagPattern, flagTuning, flagBars)
	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))
	if !report.Passed {
		return fmt.Errorf("validation failed: %s", summarize(report))
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	patterns := []string{"ascending", "descending", "pedal", "arpeggio", "3nps"}
	total, passed, skipped := 0, 0, 0

	for _, root := range theory.NoteNames {
		for _, scaleName := range theory.ScaleNames() {
			for _, patternName := range patterns {
				for position := 1; position <= 5; position++ {
					tuning, _ := theory.GetTuning("standard")
					columns, err := buildColumns(root, scaleName, patternName, flagBars, position, tuning, "", 0)
					if errors.Is(err, theory.ErrInvalidScaleForPattern) {
						skipped++
						continue
					}
					total++
					if err != nil || len(columns) == 0 {
						fmt.Printf("❌ %s %s %s pos%d: %v\n", root, scaleName, patternName, position, err)
						continue
					}

					rendered := tab.Render(columns, tab.NotesPerMeasure)
					report := validate.Check(rendered, root, scaleName, patternName, "standard", flagBars)
					if report.Passed {
						passed++
					} else {
						fmt.Printf("❌ %s %s %s pos%d: %s\n", root, scaleName, patternName, position, summarize(report))
					}
				}
			}
		}
	}

	fmt.Printf("📊 %d/%d passed (%d skipped)\n", passed, total, skipped)
	if passed < total {
		return fmt.Errorf("%d combinations failed", total-passed)
	}
	return nil
}

func runDrums(cmd *cobra.Command, args []string) error {
	patternName := flagDrumPattern
	if patternName == "" {
		patternName = drums.PatternFromStyle(flagDrumStyle)
	}

	bars := drums.GeneratePattern(patternName, flagBars, !flagNoCrashes, !flagNoFills)
	fmt.Println(drums.RenderTab(bars))

	if flagMIDIOut != "" {
		f, err := os.Create(flagMIDIOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := drums.WriteSMF(f, bars, patternName, float64(flagTempo)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", flagMIDIOut)
	}
	return nil
}

func summarize(r validate.Report) string {
	switch {
	case r.ParseError != "":
		return "parse error: " + r.ParseError
	case len(r.PitchErrors) > 0:
		return fmt.Sprintf("%d notes out of scale", len(r.PitchErrors))
	case !r.Playable:
		return fmt.Sprintf("fret span %d too wide", r.FretSpan)
	case !r.EnoughNotes:
		return fmt.Sprintf("only %d notes", r.NoteCount)
	default:
		return "failed"
	}
}
