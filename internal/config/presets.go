package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not configured.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Validate checks that every preset is a playable board, names are unique
// and the default preset exists.
func (c SweeperConfig) Validate() error {
	if len(c.Presets) == 0 {
		return errors.New("config: no presets")
	}

	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		name := normalize(p.Name)
		if name == "" {
			return errors.New("config: preset without a name")
		}
		if seen[name] {
			return fmt.Errorf("config: duplicate preset %q", p.Name)
		}
		seen[name] = true

		if _, _, err := p.Board().Validate(); err != nil {
			return fmt.Errorf("config: preset %q: %w", p.Name, err)
		}
	}

	if !seen[normalize(c.DefaultPreset)] {
		return fmt.Errorf("config: default preset %q: %w", c.DefaultPreset, ErrUnknownPreset)
	}
	if c.Timing.LongPressMs <= 0 || c.Timing.TickMs <= 0 {
		return errors.New("config: timing values must be positive")
	}
	return nil
}

// Preset looks up a preset by case-insensitive name. An empty name selects
// the default preset.
func (c SweeperConfig) Preset(name string) (Preset, error) {
	if strings.TrimSpace(name) == "" {
		name = c.DefaultPreset
	}
	want := normalize(name)
	for _, p := range c.Presets {
		if normalize(p.Name) == want {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names returns the preset names in file order.
func (c SweeperConfig) Names() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// Custom builds an unnamed preset from explicit dimensions, as given on the
// command line. Zero fields are taken from base.
func Custom(base Preset, height, width, mines int, mask []string) Preset {
	p := base
	p.Name = "custom"
	p.Description = ""
	if height > 0 {
		p.Height = height
	}
	if width > 0 {
		p.Width = width
	}
	if mines > 0 {
		p.Mines = mines
	}
	if mask != nil {
		p.Mask = mask
	} else if height > 0 || width > 0 {
		p.Mask = nil
	}
	if p.Height == base.Height && p.Width == base.Width && p.Mines == base.Mines && equalRows(p.Mask, base.Mask) {
		return base
	}
	return p
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
