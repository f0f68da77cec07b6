package config

import (
	_ "embed"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// Timing defaults.
const (
	DefaultLongPressMs = 1000
	DefaultTickMs      = 250
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() SweeperConfig {
	return SweeperConfig{
		DefaultPreset: "beginner",
		Timing: TimingConfig{
			LongPressMs: DefaultLongPressMs,
			TickMs:      DefaultTickMs,
		},
		Storage: StorageConfig{
			Path: "~/.sweeper/results.db",
		},
		Presets: []Preset{
			{Name: "beginner", Description: "8x8, 10 mines", Height: 8, Width: 8, Mines: 10},
			{Name: "intermediate", Description: "16x16, 40 mines", Height: 16, Width: 16, Mines: 40},
			{Name: "expert", Description: "16x30, 99 mines", Height: 16, Width: 30, Mines: 99},
			{
				Name:        "diamond",
				Description: "7x7 diamond, 5 mines",
				Height:      7,
				Width:       7,
				Mines:       5,
				Mask: []string{
					"0001000",
					"0011100",
					"0111110",
					"1111111",
					"0111110",
					"0011100",
					"0001000",
				},
			},
		},
	}
}

// applyDefaults fills zero timing fields with the built-in values.
func applyDefaults(cfg *SweeperConfig) {
	if cfg.Timing.LongPressMs <= 0 {
		cfg.Timing.LongPressMs = DefaultLongPressMs
	}
	if cfg.Timing.TickMs <= 0 {
		cfg.Timing.TickMs = DefaultTickMs
	}
	if cfg.DefaultPreset == "" && len(cfg.Presets) > 0 {
		cfg.DefaultPreset = cfg.Presets[0].Name
	}
}
