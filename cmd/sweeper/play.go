package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/board"
	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
)

var (
	flagPreset  string
	flagHeight  int
	flagWidth   int
	flagMines   int
	flagMask    string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start a board in this terminal.

Controls:
  Arrows/hjkl  - Move focus (left/right wrap across rows)
  Space/Enter  - Reveal focused cell
  F            - Toggle flag on focused cell
  Mouse        - Click to reveal, hold 1s or right-click to flag
  R            - New board
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Board shape:
  --preset picks a configured board (see 'sweeper presets').
  --height/--width/--mines override it; --mask gives comma-separated rows of
  0/1 where 0 removes the cell from the board.

Examples:
  sweeper play
  sweeper play --preset intermediate
  sweeper play --height 5 --width 5 --mines 3 --mask 01110,11111,11111,11111,01110
  sweeper play --seed 42 --log ./sweeper.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset (default from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (rows)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (columns)")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Number of mines")
	playCmd.Flags().StringVar(&flagMask, "mask", "", "Comma-separated mask rows over 0/1")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write a debug log to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	base := mustPreset(cfg, flagPreset)
	preset := config.Custom(base, flagHeight, flagWidth, flagMines, board.ParseMask(flagMask))
	if _, _, err := preset.Board().Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.Timing.Tick(),
		Seed:         flagSeed,
	}

	var logger *log.Logger
	if flagLogFile != "" {
		f, logErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", logErr)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "sweeper",
			Level:           log.DebugLevel,
		})
		logger.Debug("starting board", "preset", preset.Name, "height", preset.Height, "width", preset.Width, "mines", preset.Mines, "seed", flagSeed)
	}

	store := openStore(resolveDBPath(cfg))

	runErr := tui.Run(tui.Options{
		Preset:  preset,
		Timing:  cfg.Timing,
		Runtime: runtime,
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
