// Package tui provides the Bubble Tea integration for the sweeper.
// It hosts the board engine, maps keys and mouse gestures onto it and
// draws the board into a styled screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to refresh the elapsed-time counter. Gen identifies the
// board the tick was scheduled for; ticks from an older board are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// tickSource implements board.Ticker on top of tea.Tick. The engine calls
// Start and Stop from inside Update; the command that starts the loop is
// collected afterwards with take.
type tickSource struct {
	interval time.Duration
	gen      uint64
	running  bool
	pending  tea.Cmd
}

func newTickSource(interval time.Duration) *tickSource {
	return &tickSource{interval: interval}
}

// Start begins a new generation of ticks.
func (t *tickSource) Start() {
	t.gen++
	t.running = true
	t.pending = tickCmd(t.interval, t.gen)
}

// Stop invalidates every tick already in flight.
func (t *tickSource) Stop() {
	t.gen++
	t.running = false
	t.pending = nil
}

// take returns and clears the command queued by Start.
func (t *tickSource) take() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

// accept reports whether msg belongs to the running generation and, if so,
// schedules the next tick.
func (t *tickSource) accept(msg TickMsg) (tea.Cmd, bool) {
	if !t.running || msg.Gen != t.gen {
		return nil, false
	}
	return tickCmd(t.interval, t.gen), true
}
