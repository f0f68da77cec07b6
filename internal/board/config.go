package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by Reset when the dimensions, the mine count
// or the mask shape cannot describe a playable board.
var ErrInvalidConfig = errors.New("board: invalid config")

// MaxCells caps Height*Width.
const MaxCells = 1 << 20

// Config describes a board. It is supplied by the presentation layer, already
// parsed; defaulting missing values is the caller's job.
type Config struct {
	Height int
	Width  int
	Mines  int

	// Mask has one string per row over {'0','1'}; '1' marks a playable cell.
	// A nil or empty mask means every cell is playable.
	Mask []string
}

// ParseMask splits a comma-separated mask attribute ("0110,1111,0110") into rows.
// Surrounding whitespace is trimmed. An empty string yields a nil mask.
func ParseMask(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	rows := strings.Split(s, ",")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}
	return rows
}

// Validate checks the config and returns the row-major masked bitmap and the
// number of playable cells. Errors wrap ErrInvalidConfig.
func (c Config) Validate() (masked []bool, playable int, err error) {
	if c.Height <= 0 {
		return nil, 0, fmt.Errorf("%w: height %d must be positive", ErrInvalidConfig, c.Height)
	}
	if c.Width <= 0 {
		return nil, 0, fmt.Errorf("%w: width %d must be positive", ErrInvalidConfig, c.Width)
	}
	if c.Mines <= 0 {
		return nil, 0, fmt.Errorf("%w: mine count %d must be positive", ErrInvalidConfig, c.Mines)
	}

	if c.Height > MaxCells/c.Width {
		return nil, 0, fmt.Errorf("%w: %dx%d board exceeds %d cells", ErrInvalidConfig, c.Height, c.Width, MaxCells)
	}

	masked = make([]bool, c.Height*c.Width)
	playable = len(masked)

	if len(c.Mask) > 0 {
		if len(c.Mask) != c.Height {
			return nil, 0, fmt.Errorf("%w: mask has %d rows, want %d", ErrInvalidConfig, len(c.Mask), c.Height)
		}
		for y, row := range c.Mask {
			if len(row) != c.Width {
				return nil, 0, fmt.Errorf("%w: mask row %d has %d columns, want %d", ErrInvalidConfig, y, len(row), c.Width)
			}
			for x := 0; x < len(row); x++ {
				switch row[x] {
				case '1':
				case '0':
					masked[y*c.Width+x] = true
					playable--
				default:
					return nil, 0, fmt.Errorf("%w: mask row %d has invalid character %q", ErrInvalidConfig, y, row[x])
				}
			}
		}
	}

	if c.Mines >= playable {
		return nil, 0, fmt.Errorf("%w: %d mines need more than %d playable cells", ErrInvalidConfig, c.Mines, playable)
	}

	return masked, playable, nil
}
