package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagPlain  bool
	flagRecent int
	flagClear  bool
)

var timesCmd = &cobra.Command{
	Use:   "times [preset]",
	Short: "Show best winning times",
	Long: `Display the best winning times for a preset (default: the configured
default preset). On a terminal an interactive table is shown, use tab to
switch presets. With --plain, or when output is not a terminal, the top 10
times of the named preset are printed, or a summary of every preset when no
preset is named.

Examples:
  sweeper times
  sweeper times expert --plain
  sweeper times --recent 10
  sweeper times beginner --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTimes,
}

func init() {
	timesCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print times instead of the interactive table")
	timesCmd.Flags().IntVar(&flagRecent, "recent", 0, "List the N most recent games across presets")
	timesCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded game of the named preset")
}

func runTimes(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if flagClear && name == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a preset name")
		os.Exit(1)
	}
	preset := mustPreset(cfg, name)

	path := resolveDBPath(cfg)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no results database configured")
		os.Exit(1)
	}
	store := openStore(path)
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearResults(preset.Name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared results for %s.\n", preset.Name)
		return
	case flagRecent > 0:
		printRecent(store, flagRecent)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, cfg.Presets, preset.Name, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if name == "" {
		printSummary(store, cfg.Names())
		return
	}
	printBestTimes(store, preset)
}

func printBestTimes(store *storage.Store, preset config.Preset) {
	times, err := store.BestTimes(preset.Name, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving times: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s (%dx%d, %d mines)\n", preset.Name, preset.Width, preset.Height, preset.Mines)
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sweeper play --preset %s' to set the first time!\n", preset.Name)
		return
	}

	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "----", "----")

	for i, r := range times {
		fmt.Printf("  %-4d  %-6s  %s\n", i+1, clock(r.Seconds), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(preset.Name)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%)\n", stats.Played, stats.Won, stats.WinRate()*100)
	}
}

// printSummary shows one line per preset in config order. Presets that only
// exist in the ledger (removed from the config, or custom boards) follow.
func printSummary(store *storage.Store, names []string) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	var extra []string
	for n := range all {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)

	fmt.Println("Results by preset:")
	fmt.Println()
	fmt.Printf("  %-14s  %-6s  %-4s  %-5s  %-6s  %s\n", "Preset", "Played", "Won", "Rate", "Best", "Last played")
	fmt.Printf("  %-14s  %-6s  %-4s  %-5s  %-6s  %s\n", "------", "------", "---", "----", "----", "-----------")

	for _, n := range append(names, extra...) {
		st, ok := all[n]
		if !ok {
			fmt.Printf("  %-14s  %-6d  %-4d  %-5s  %-6s  %s\n", n, 0, 0, "-", "-", "-")
			continue
		}
		best := "-"
		if st.Won > 0 {
			best = clock(st.BestSeconds)
		}
		fmt.Printf("  %-14s  %-6d  %-4d  %-5s  %-6s  %s\n", n, st.Played, st.Won,
			fmt.Sprintf("%.0f%%", st.WinRate()*100), best, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printRecent(store *storage.Store, limit int) {
	games, err := store.Recent(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}
	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-9s  %-6s  %-6s\n", "Date", "Preset", "Board", "Result", "Time")
	fmt.Printf("  %-16s  %-14s  %-9s  %-6s  %-6s\n", "----", "------", "-----", "------", "----")
	for _, r := range games {
		result := "lost"
		if r.Won {
			result = "won"
		}
		board := fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines)
		fmt.Printf("  %-16s  %-14s  %-9s  %-6s  %-6s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Preset, board, result, clock(r.Seconds))
	}
}

// clock formats seconds as m:ss.
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
