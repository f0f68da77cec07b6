// Package config provides YAML-based board presets and timing settings
// for the sweeper.
package config

import (
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/board"
)

// SweeperConfig contains all configuration for the game.
type SweeperConfig struct {
	DefaultPreset string        `yaml:"default_preset"`
	Timing        TimingConfig  `yaml:"timing"`
	Storage       StorageConfig `yaml:"storage"`
	Presets       []Preset      `yaml:"presets"`
}

// TimingConfig defines the gesture threshold and the clock refresh rate.
type TimingConfig struct {
	LongPressMs int `yaml:"long_press_ms"`
	TickMs      int `yaml:"tick_ms"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	Path string `yaml:"path"` // "~" is expanded; empty disables the ledger
}

// Preset is a named board shape.
type Preset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Height      int      `yaml:"height"`
	Width       int      `yaml:"width"`
	Mines       int      `yaml:"mines"`
	Mask        []string `yaml:"mask,omitempty"` // one row per entry, '1' = playable
}

// Board converts the preset into an engine configuration.
func (p Preset) Board() board.Config {
	return board.Config{
		Height: p.Height,
		Width:  p.Width,
		Mines:  p.Mines,
		Mask:   append([]string(nil), p.Mask...),
	}
}

// LongPress returns the long-press threshold.
func (t TimingConfig) LongPress() time.Duration {
	return time.Duration(t.LongPressMs) * time.Millisecond
}

// Tick returns the elapsed-clock refresh interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMs) * time.Millisecond
}
