package board

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/focus"
)

// Options configures an Engine. Zero values are usable.
type Options struct {
	Seed     int64      // RNG seed for mine placement
	Clock    core.Clock // defaults to core.SystemClock
	Ticker   Ticker     // optional; nil means the caller drives Tick itself
	Observer Observer   // optional
}

// Engine owns a board and its game state. It is not safe for concurrent use:
// every command must run on the same goroutine (the presentation loop).
type Engine struct {
	cfg      Config
	cells    []Cell
	adj      *AdjacencyIndex
	playable int

	state          State
	flagsRemaining int
	hidden         int
	elapsed        int
	startTime      time.Time
	ticking        bool
	detonated      int // index of the mine that lost the game, -1 otherwise

	focus    core.Coord
	hasFocus bool

	rng      *rand.Rand
	clock    core.Clock
	ticker   Ticker
	observer Observer

	last Summary // last summary handed to the observer
}

// NewEngine creates an engine and resets it to cfg.
func NewEngine(cfg Config, opts Options) (*Engine, error) {
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}

	e := &Engine{
		rng:       rand.New(rand.NewSource(opts.Seed)),
		clock:     clock,
		ticker:    opts.Ticker,
		observer:  opts.Observer,
		detonated: -1,
	}

	if err := e.Reset(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset validates cfg and, only if it is valid, discards the current board
// and starts a fresh one in StatePending. A running tick source is stopped
// first so a late beat cannot touch the new board. On error the engine is
// left unchanged.
func (e *Engine) Reset(cfg Config) error {
	masked, playable, err := cfg.Validate()
	if err != nil {
		return err
	}

	e.stopTicker()

	cells := make([]Cell, cfg.Height*cfg.Width)
	for i := range cells {
		cells[i].Masked = masked[i]
	}

	cfg.Mask = append([]string(nil), cfg.Mask...)
	e.cfg = cfg
	e.cells = cells
	e.adj = NewAdjacencyIndex(cfg.Height, cfg.Width, masked)
	e.playable = playable
	e.state = StatePending
	e.flagsRemaining = cfg.Mines
	e.hidden = playable
	e.elapsed = 0
	e.startTime = time.Time{}
	e.detonated = -1
	e.focus = core.Coord{}
	e.hasFocus = false

	e.last = e.Summary()
	if e.observer != nil {
		e.observer.SummaryChanged(e.last)
	}
	return nil
}

// Reveal uncovers the cell at c. It is a no-op for coordinates off the
// board, masked, revealed or flagged cells, and once the game has ended.
// The first reveal of a board places the mines (never under c) and starts
// the tick source.
func (e *Engine) Reveal(c core.Coord) {
	i, ok := e.playableIndex(c)
	if !ok || e.state.Terminal() {
		return
	}

	cell := &e.cells[i]
	if cell.Revealed || cell.Flagged {
		return
	}

	if e.state == StatePending {
		e.placeMines(i)
		e.state = StatePlaying
		e.startTime = e.clock.Now()
		e.startTicker()
	}

	if cell.Mine {
		e.lose(i)
	} else {
		e.uncover(i)
		if cell.Adjacent == 0 {
			e.cascade(i)
		}
		if e.hidden == e.cfg.Mines && e.state == StatePlaying {
			e.win()
		}
	}

	e.notifySummary()
}

// ToggleFlag flips the flag on the cell at c. It is a no-op for coordinates
// off the board, masked or revealed cells, and once the game has ended.
// Flagging never places mines or starts the clock.
func (e *Engine) ToggleFlag(c core.Coord) {
	i, ok := e.playableIndex(c)
	if !ok || e.state.Terminal() {
		return
	}

	cell := &e.cells[i]
	if cell.Revealed {
		return
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		e.flagsRemaining--
	} else {
		e.flagsRemaining++
	}

	e.notifyCell(i)
	e.notifySummary()
}

// Tick refreshes the elapsed-seconds counter while the game is being played.
func (e *Engine) Tick() {
	if e.state != StatePlaying {
		return
	}
	e.refreshElapsed()
	e.notifySummary()
}

// SetFocus moves keyboard focus to c. Coordinates off the board clear focus.
func (e *Engine) SetFocus(c core.Coord) {
	if c.Within(e.cfg.Height, e.cfg.Width) {
		e.focus, e.hasFocus = c, true
	} else {
		e.focus, e.hasFocus = core.Coord{}, false
	}
	e.notifySummary()
}

// ClearFocus removes keyboard focus.
func (e *Engine) ClearFocus() {
	e.focus, e.hasFocus = core.Coord{}, false
	e.notifySummary()
}

// MoveFocus applies a navigation key to the current focus. Without focus the
// first key lands on (0,0). Returns false when focus did not move.
func (e *Engine) MoveFocus(key focus.Key) bool {
	if !e.hasFocus {
		if key == focus.KeyNone {
			return false
		}
		e.SetFocus(core.C(0, 0))
		return true
	}

	next, ok := focus.Next(e.focus, key, e.cfg.Height, e.cfg.Width)
	if !ok {
		return false
	}
	e.SetFocus(next)
	return true
}

// CellView returns the view of the cell at c. Coordinates off the board
// report a masked cell.
func (e *Engine) CellView(c core.Coord) CellView {
	if !c.Within(e.cfg.Height, e.cfg.Width) {
		return CellView{Masked: true}
	}
	return e.view(c.Index(e.cfg.Width))
}

// Summary returns the aggregate counters.
func (e *Engine) Summary() Summary {
	return Summary{
		State:          e.state,
		FlagsRemaining: e.flagsRemaining,
		Elapsed:        e.elapsed,
		Hidden:         e.hidden,
		Focus:          e.focus,
		HasFocus:       e.hasFocus,
	}
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// Config returns the configuration of the current board.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Mask = append([]string(nil), e.cfg.Mask...)
	return cfg
}

// Playable returns the number of unmasked cells.
func (e *Engine) Playable() int {
	return e.playable
}

// playableIndex returns the row-major index of c if it is on the board and unmasked.
func (e *Engine) playableIndex(c core.Coord) (int, bool) {
	if !c.Within(e.cfg.Height, e.cfg.Width) {
		return 0, false
	}
	i := c.Index(e.cfg.Width)
	if e.cells[i].Masked {
		return 0, false
	}
	return i, true
}

// placeMines arms cfg.Mines cells chosen uniformly among the unmasked cells
// other than safe, then computes adjacency counts.
func (e *Engine) placeMines(safe int) {
	candidates := make([]int, 0, e.playable-1)
	for i := range e.cells {
		if i != safe && !e.cells[i].Masked {
			candidates = append(candidates, i)
		}
	}

	e.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})

	e.arm(candidates[:e.cfg.Mines])
}

// arm marks the given cells as mines and fills in every adjacency count.
func (e *Engine) arm(mines []int) {
	for _, i := range mines {
		e.cells[i].Mine = true
	}
	for _, i := range mines {
		for _, n := range e.adj.indices(i) {
			e.cells[n].Adjacent++
		}
	}
}

// uncover reveals a single cell and keeps the hidden counter in step.
func (e *Engine) uncover(i int) {
	e.cells[i].Revealed = true
	e.hidden--
	e.notifyCell(i)
}

// cascade reveals the connected zero-adjacency region around origin plus
// its numbered border, breadth first. Flagged cells are left alone.
func (e *Engine) cascade(origin int) {
	queue := append([]int(nil), e.adj.indices(origin)...)

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		cell := &e.cells[i]
		if cell.Revealed || cell.Flagged || cell.Mine {
			continue
		}

		e.uncover(i)

		if cell.Adjacent == 0 {
			for _, n := range e.adj.indices(i) {
				if !e.cells[n].Revealed {
					queue = append(queue, n)
				}
			}
		}
	}
}

// lose ends the game on the mine at hit and uncovers the whole board.
// Flags stay set: a correctly flagged mine is shown as both flagged and
// revealed, and a flag on a safe cell reports Misflagged.
func (e *Engine) lose(hit int) {
	e.refreshElapsed()
	e.state = StateLost
	e.detonated = hit
	e.stopTicker()

	for i := range e.cells {
		cell := &e.cells[i]
		if !cell.Masked && !cell.Revealed {
			e.uncover(i)
		}
	}
}

// win ends the game and flags every mine the player left unflagged.
func (e *Engine) win() {
	e.refreshElapsed()
	e.state = StateWon
	e.stopTicker()

	for i := range e.cells {
		cell := &e.cells[i]
		if cell.Mine && !cell.Flagged {
			cell.Flagged = true
			e.notifyCell(i)
		}
	}
	e.flagsRemaining = 0
}

// refreshElapsed recomputes the whole seconds since the first reveal.
// The final value is frozen when the game ends.
func (e *Engine) refreshElapsed() {
	e.elapsed = int(e.clock.Now().Sub(e.startTime) / time.Second)
}

func (e *Engine) startTicker() {
	if e.ticking {
		return
	}
	e.ticking = true
	if e.ticker != nil {
		e.ticker.Start()
	}
}

func (e *Engine) stopTicker() {
	if !e.ticking {
		return
	}
	e.ticking = false
	if e.ticker != nil {
		e.ticker.Stop()
	}
}

func (e *Engine) view(i int) CellView {
	cell := e.cells[i]
	return CellView{
		Revealed:   cell.Revealed,
		Flagged:    cell.Flagged,
		Mine:       cell.Mine,
		Adjacent:   cell.Adjacent,
		Masked:     cell.Masked,
		Misflagged: e.state == StateLost && cell.Flagged && !cell.Mine,
		Detonated:  i == e.detonated,
	}
}

func (e *Engine) notifyCell(i int) {
	if e.observer == nil {
		return
	}
	e.observer.CellChanged(core.FromIndex(i, e.cfg.Width), e.view(i))
}

func (e *Engine) notifySummary() {
	s := e.Summary()
	if s == e.last {
		return
	}
	e.last = s
	if e.observer != nil {
		e.observer.SummaryChanged(s)
	}
}
