package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/music"
)

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List the scale presets",
	Long:  `Shows every built-in scale. The number of notes sets the board size.`,
	Args:  cobra.NoArgs,
	Run:   runScales,
}

func runScales(cmd *cobra.Command, args []string) {
	presets := music.List()

	if len(presets) == 0 {
		fmt.Println("No scales available.")
		return
	}

	fmt.Println("Available scales:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Notes")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "-----")

	for _, info := range presets {
		p, err := music.Lookup(info.ID)
		if err != nil {
			continue
		}
		names := make([]string, len(p.Notes))
		for i, n := range p.Notes {
			names[i] = n.String()
		}
		size := fmt.Sprintf("%dx%d", info.Size, info.Size)
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, info.ID, size, strings.Join(names, " "))
	}

	fmt.Println()
	fmt.Printf("Run 'bounce play --scale <id>' to use a scale (default %q).\n", music.DefaultPreset)
}
