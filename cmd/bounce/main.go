// bounce is a terminal step sequencer: blocks travel across a wrapped grid,
// bounce off walls and each other, and play the note of the cell they
// bounce from.
//
// Usage:
//
//	bounce play              - Open the interactive board
//	bounce run <scenario>    - Run a scenario file headless and print the board
//	bounce scales            - List scale presets
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.bounce, ./configs)
//	--scale <name>   - Override the scale preset
//	--layout <name>  - Override the note layout (columns, diagonal)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagScale  string
	flagLayout string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - a toroidal step sequencer for your terminal",
	Long: `Bounce is a step sequencer played on a wrapped grid. Blocks move one
cell per eighth note, bounce off walls and other blocks, and sound the
note of the cell they bounced from.

Available commands:
  play     - Open the interactive board
  run      - Run a scenario file headless
  scales   - Show the scale presets

Examples:
  bounce play
  bounce play --scale pentatonic --layout diagonal
  bounce run examples/swap.yaml --ticks 32
  bounce scales`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScale, "scale", "", "Scale preset (see 'bounce scales')")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Note layout: columns, diagonal")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scalesCmd)
}
