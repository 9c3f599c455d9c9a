package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/board"
	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
)

var (
	flagTicks    int
	flagFrames   bool
	flagRealtime bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run a scenario headless",
	Long: `Load a scenario, advance it tick by tick and print the final board.
Every bounce and duplicate arrival is logged to stderr.

By default the run is silent and as fast as possible. With --realtime it
ticks every eighth note at 120 BPM and plays through the audio device.

Examples:
  bounce run examples/swap.yaml
  bounce run examples/swap.yaml --ticks 64 --frames
  bounce run examples/swap.yaml --realtime`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to run (0 = scenario's value)")
	runCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print the board after every tick")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at playing speed with audio")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scenario, err := config.LoadScenario(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg, err = scenario.Overlay(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg, err = applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel())

	newEmitter, closeAudio := newEmitterFactory(cfg, !flagRealtime, logger)
	defer closeAudio()

	b, err := newBoard(cfg, newEmitter, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := scenario.Populate(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ticks := scenario.Ticks
	if flagTicks > 0 {
		ticks = flagTicks
	}

	logger.Info("running scenario", "name", scenario.Name, "ticks", ticks, "blocks", len(b.Blocks()))

	var ticker *time.Ticker
	if flagRealtime {
		ticker = time.NewTicker(tui.StepInterval)
		defer ticker.Stop()
	}

	faults := 0
	for range ticks {
		if ticker != nil {
			<-ticker.C
		}
		rep, err := b.Advance()
		if err != nil {
			faults++
			continue
		}
		logReport(logger, rep)
		if flagFrames {
			fmt.Println(b.RenderText())
			fmt.Println()
		}
	}

	if !flagFrames {
		fmt.Println(b.RenderText())
	}
	if faults > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d ticks faulted\n", faults, ticks)
		os.Exit(1)
	}
}

func logReport(logger *log.Logger, rep board.TickReport) {
	for _, ev := range rep.Bounces {
		logger.Info("bounce", "tick", rep.Tick, "block", ev.Block, "cell", ev.Cell, "note", ev.Note)
	}
	for _, ev := range rep.Duplicates {
		logger.Info("duplicate", "tick", rep.Tick, "block", ev.Block, "cell", ev.Cell, "note", ev.Note.Transpose(1))
	}
}
