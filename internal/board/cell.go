// Package board implements the Minesweeper board engine: lazy mine placement,
// reveal cascades, flag bookkeeping, win/loss detection, the elapsed-time
// counter and keyboard focus over a rectangular, optionally masked grid.
//
// The engine holds no rendering state. Presentation code reads it through
// CellView and Summary (or an Observer) and changes it only through the
// command methods.
package board

import "github.com/vovakirdan/tui-sweeper/internal/core"

// State is the game state machine.
type State int

const (
	// StatePending means no mines are placed yet; the first reveal is still to come.
	StatePending State = iota
	StatePlaying
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether only Reset can leave this state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Cell is one square of the board.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // mines among the neighbours, set once at placement
	Masked   bool
}

// CellView is the read-only picture of a cell handed to the presentation layer.
type CellView struct {
	Revealed bool
	Flagged  bool
	Mine     bool
	Adjacent int
	Masked   bool

	// Misflagged is set on a lost board for a flag that sits on a safe cell.
	Misflagged bool
	// Detonated marks the mine whose reveal lost the game.
	Detonated bool
}

// Summary holds the aggregate counters.
type Summary struct {
	State          State
	FlagsRemaining int
	Elapsed        int // whole seconds since the first reveal
	Hidden         int // playable cells not yet revealed
	Focus          core.Coord
	HasFocus       bool
}

// Observer receives one call per change. Both methods run synchronously on
// the goroutine that issued the command.
type Observer interface {
	CellChanged(c core.Coord, v CellView)
	SummaryChanged(s Summary)
}

// Ticker is the repeating elapsed-time tick source. The engine calls Start
// when the first reveal places the mines and Stop exactly once when the game
// is won, lost or reset. The owner of the Ticker calls Engine.Tick on every
// beat and must drop beats that arrive after Stop.
type Ticker interface {
	Start()
	Stop()
}
