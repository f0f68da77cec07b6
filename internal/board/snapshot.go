package board

import "strings"

// Snapshot captures the complete board for determinism testing and debugging.
type Snapshot struct {
	State          State
	FlagsRemaining int
	Hidden         int
	Elapsed        int

	// Layout has one string per row: '-' masked, '*' mine, otherwise the
	// adjacency digit. Before mines are placed every playable cell reads '0'.
	Layout []string
	// Player has one string per row as the player sees it: '-' masked,
	// '#' hidden, 'F' flagged, '*' revealed mine, digit or '.' revealed safe.
	Player []string
}

// Snapshot returns the current board snapshot.
func (e *Engine) Snapshot() Snapshot {
	layout := make([]string, e.cfg.Height)
	player := make([]string, e.cfg.Height)

	var lb, pb strings.Builder
	for y := 0; y < e.cfg.Height; y++ {
		lb.Reset()
		pb.Reset()
		for x := 0; x < e.cfg.Width; x++ {
			cell := e.cells[y*e.cfg.Width+x]
			lb.WriteByte(layoutByte(cell))
			pb.WriteByte(playerByte(cell))
		}
		layout[y] = lb.String()
		player[y] = pb.String()
	}

	return Snapshot{
		State:          e.state,
		FlagsRemaining: e.flagsRemaining,
		Hidden:         e.hidden,
		Elapsed:        e.elapsed,
		Layout:         layout,
		Player:         player,
	}
}

func layoutByte(c Cell) byte {
	switch {
	case c.Masked:
		return '-'
	case c.Mine:
		return '*'
	default:
		return byte('0' + c.Adjacent)
	}
}

func playerByte(c Cell) byte {
	switch {
	case c.Masked:
		return '-'
	case c.Flagged && !c.Revealed:
		return 'F'
	case !c.Revealed:
		return '#'
	case c.Mine:
		return '*'
	case c.Adjacent == 0:
		return '.'
	default:
		return byte('0' + c.Adjacent)
	}
}
