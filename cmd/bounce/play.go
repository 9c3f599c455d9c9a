package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
)

var (
	flagMute     bool
	flagScenario string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive board",
	Long: `Open the board in the terminal. The simulation ticks every eighth note
at 120 BPM.

Controls:
  Arrows     - Move the cursor (wraps around)
  N/S/E/W    - Add a block heading north/south/east/west
  T/B/L/R    - Toggle the top/bottom/left/right wall of the cell
  X/Bksp     - Remove the last block
  D          - Remove the blocks under the cursor
  C          - Clear blocks and walls
  P/Space    - Pause
  Ctrl+S     - Save a text screenshot to ~/.bounce/screenshots
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Examples:
  bounce play
  bounce play --mute
  bounce play --scale tiny --scenario examples/swap.yaml
  bounce play --config ./my-bounce.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Run without audio")
	playCmd.Flags().StringVar(&flagScenario, "scenario", "", "Start from a scenario file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var scenario *config.Scenario
	if flagScenario != "" {
		s, err := config.LoadScenario(flagScenario)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cfg, err = s.Overlay(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scenario = &s
	}

	if cfg, err = applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	w, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := newLogger(w, cfg.LogLevel())

	newEmitter, closeAudio := newEmitterFactory(cfg, flagMute, logger)
	defer closeAudio()

	b, err := newBoard(cfg, newEmitter, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if scenario != nil {
		if err := scenario.Populate(b); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	rc := core.DefaultConfig()
	if width, height, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = width
		rc.ScreenH = height
	}

	logger.Info("starting", "scale", cfg.Scale, "size", b.Cols(), "layout", cfg.Layout, "mute", flagMute)
	if err := tui.Run(b, rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
