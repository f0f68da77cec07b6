package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List configured board presets",
	Long:  `Shows the board presets from the active configuration file.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range cfg.Presets {
		if len(p.Name)+1 > maxNameLen { // room for the default marker
			maxNameLen = len(p.Name) + 1
		}
	}

	fmt.Println("Available presets:")
	fmt.Println()

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "Name", "Size", "Mines", "Description")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxNameLen, "----", "----", "-----", "-----------")

	for _, p := range cfg.Presets {
		name := p.Name
		if name == cfg.DefaultPreset {
			name += "*"
		}
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxNameLen, name, size, p.Mines, p.Description)

		// Masked presets show their shape
		if len(p.Mask) > 0 {
			for _, row := range p.Mask {
				fmt.Printf("  %-*s  %s\n", maxNameLen, "", shapeRow(row))
			}
		}
	}

	fmt.Println()
	fmt.Println("* default. Run 'sweeper play --preset <name>' to play one.")
}

// shapeRow draws a mask row with the board's hidden-cell glyph.
func shapeRow(row string) string {
	out := make([]rune, 0, len(row)*2)
	for _, r := range row {
		if r == '1' {
			out = append(out, '▪', ' ')
		} else {
			out = append(out, ' ', ' ')
		}
	}
	return string(out)
}
