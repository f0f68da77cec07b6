// sweeper is a Minesweeper game for the terminal.
//
// Usage:
//
//	sweeper play             - Play a board in this terminal
//	sweeper presets          - List configured board presets
//	sweeper times [preset]   - Show best winning times
//	sweeper serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Custom config YAML (default: search ~/.sweeper/configs, ./configs, built-in)
//	--seed <value>  - Set RNG seed for reproducible mine placement
//	--db <path>     - Set results database path (default: from config)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Sweeper - Minesweeper in your terminal",
	Long: `Sweeper is a terminal Minesweeper. Reveal every safe cell without
touching a mine. Play with the keyboard or the mouse: click to reveal,
hold or right-click to flag.

Available commands:
  play     - Play a board in this terminal
  presets  - List configured board presets
  times    - Show best winning times
  serve    - Start SSH server for remote play

Examples:
  sweeper play
  sweeper play --preset expert
  sweeper play --height 10 --width 20 --mines 30
  sweeper times beginner
  sweeper serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.SweeperConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// mustPreset looks up a preset by name (empty selects the default) or exits
// listing the configured names.
func mustPreset(cfg config.SweeperConfig, name string) config.Preset {
	preset, err := cfg.Preset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Available presets: %s\n", strings.Join(cfg.Names(), ", "))
		os.Exit(1)
	}
	return preset
}

// resolveDBPath returns the --db flag or the configured ledger path.
func resolveDBPath(cfg config.SweeperConfig) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}

// openStore opens the results ledger. A failure is reported and play
// continues without it.
func openStore(path string) *storage.Store {
	if path == "" {
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}
