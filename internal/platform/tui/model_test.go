package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/board"
	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/gesture"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	pairPreset     = config.Preset{Name: "pair", Height: 1, Width: 2, Mines: 1}
	beginnerPreset = config.Preset{Name: "beginner", Height: 8, Width: 8, Mines: 10}
	testTiming     = config.TimingConfig{LongPressMs: 1000, TickMs: 250}
)

func newTestModel(t *testing.T, preset config.Preset, store *storage.Store) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m, err := NewModel(Options{
		Preset:  preset,
		Timing:  testTiming,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7},
		Store:   store,
		Clock:   clock,
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	t.Cleanup(m.shutdown)
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

// drain feeds every recognized gesture waiting in the channel back into the model.
func drain(t *testing.T, m Model) (Model, int) {
	t.Helper()
	n := 0
	for {
		select {
		case ev := <-m.events:
			m, _ = update(t, m, gestureMsg(ev))
			n++
		default:
			return m, n
		}
	}
}

func mouseAt(m Model, c core.Coord, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{
		X:      m.view.originX + c.X*cellW + 1,
		Y:      m.view.originY + c.Y,
		Action: action,
		Button: button,
	}
}

func TestNewModelRejectsInvalidPreset(t *testing.T) {
	_, err := NewModel(Options{Preset: config.Preset{Name: "bad", Height: 2, Width: 2, Mines: 4}})
	if err == nil {
		t.Fatal("expected error for a preset with too many mines")
	}
}

func TestKeyboardRevealWinsAndRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m, _ := newTestModel(t, pairPreset, store)

	// First reveal key only places focus.
	m, _ = update(t, m, runeKey(' '))
	if s := m.engine.Summary(); !s.HasFocus || s.Focus != core.C(0, 0) || s.State != board.StatePending {
		t.Fatalf("after first key: %+v", s)
	}

	m, cmd := update(t, m, runeKey(' '))
	if m.engine.State() != board.StateWon {
		t.Fatalf("state = %v, want won", m.engine.State())
	}
	if cmd != nil {
		t.Error("a game won on the first reveal must not leave a tick loop running")
	}
	if !m.recorded {
		t.Error("finished game not marked as recorded")
	}

	best, err := store.BestTimes("pair", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(best) != 1 || !best[0].Won || best[0].Width != 2 {
		t.Fatalf("ledger = %+v", best)
	}

	// Further commands do not record twice.
	m, _ = update(t, m, runeKey(' '))
	best, _ = store.BestTimes("pair", 10)
	if len(best) != 1 {
		t.Fatalf("result recorded %d times", len(best))
	}
}

func TestKeyboardNavigationWraps(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight}) // no focus yet: lands on (0,0)
	for i := 0; i < 9; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if s := m.engine.Summary(); s.Focus != core.C(1, 1) {
		t.Fatalf("focus = %v, want (1,1)", s.Focus)
	}
	m, _ = update(t, m, runeKey('k'))
	m, _ = update(t, m, runeKey('k'))
	if s := m.engine.Summary(); s.Focus != core.C(1, 0) {
		t.Fatalf("focus = %v, want (1,0)", s.Focus)
	}
}

func TestKeyboardFlag(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)

	m, _ = update(t, m, runeKey('f')) // focus
	m, _ = update(t, m, runeKey('f'))
	if !m.engine.CellView(core.C(0, 0)).Flagged {
		t.Fatal("cell not flagged")
	}
	if m.engine.Summary().FlagsRemaining != 9 {
		t.Fatalf("flags remaining = %d", m.engine.Summary().FlagsRemaining)
	}
	if m.engine.State() != board.StatePending {
		t.Fatal("flagging must not start the game")
	}
}

func TestTickLoop(t *testing.T) {
	m, clock := newTestModel(t, beginnerPreset, nil)

	m, _ = update(t, m, runeKey(' '))
	m, cmd := update(t, m, runeKey(' '))
	if m.engine.State() != board.StatePlaying {
		t.Skipf("first reveal ended the game (%v)", m.engine.State())
	}
	if cmd == nil {
		t.Fatal("first reveal should start the tick loop")
	}

	gen := m.ticker.gen
	clock.Advance(3 * time.Second)
	m, next := update(t, m, TickMsg{Gen: gen})
	if next == nil {
		t.Fatal("accepted tick should schedule the next one")
	}
	if m.engine.Summary().Elapsed != 3 {
		t.Fatalf("elapsed = %d, want 3", m.engine.Summary().Elapsed)
	}

	// Restart stops the loop; the in-flight tick is stale.
	m, _ = update(t, m, runeKey('r'))
	if m.engine.State() != board.StatePending {
		t.Fatalf("state after restart = %v", m.engine.State())
	}
	clock.Advance(time.Second)
	m, next = update(t, m, TickMsg{Gen: gen})
	if next != nil {
		t.Fatal("stale tick must not reschedule")
	}
	if m.engine.Summary().Elapsed != 0 {
		t.Fatalf("stale tick changed elapsed to %d", m.engine.Summary().Elapsed)
	}
}

func TestMouseTapReveals(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)
	c := core.C(4, 4)

	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionRelease, tea.MouseButtonNone))

	m, n := drain(t, m)
	if n != 1 {
		t.Fatalf("expected 1 gesture, got %d", n)
	}
	if !m.engine.CellView(c).Revealed {
		t.Fatal("tap did not reveal the cell")
	}
	if m.engine.CellView(c).Mine {
		t.Fatal("first reveal hit a mine")
	}
}

func TestMouseLongPressFlags(t *testing.T) {
	m, clock := newTestModel(t, beginnerPreset, nil)
	c := core.C(2, 3)

	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionPress, tea.MouseButtonLeft))
	clock.Advance(time.Second)
	m, n := drain(t, m)
	if n != 1 || !m.engine.CellView(c).Flagged {
		t.Fatalf("long press: %d gestures, flagged=%v", n, m.engine.CellView(c).Flagged)
	}

	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionRelease, tea.MouseButtonNone))
	m, n = drain(t, m)
	if n != 0 {
		t.Fatalf("release after a long press emitted %d gestures", n)
	}
	if m.engine.State() != board.StatePending {
		t.Fatal("long press must not start the game")
	}
}

func TestMouseRightClickFlags(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)
	c := core.C(7, 7)

	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionPress, tea.MouseButtonRight))
	m, _ = drain(t, m)
	if !m.engine.CellView(c).Flagged {
		t.Fatal("right click did not flag")
	}
}

func TestMouseDragOffCancels(t *testing.T) {
	m, clock := newTestModel(t, beginnerPreset, nil)
	c := core.C(1, 1)

	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, mouseAt(m, core.C(2, 1), tea.MouseActionMotion, tea.MouseButtonLeft))
	m, _ = update(t, m, mouseAt(m, core.C(2, 1), tea.MouseActionRelease, tea.MouseButtonNone))
	clock.Advance(2 * time.Second)

	m, n := drain(t, m)
	if n != 0 {
		t.Fatalf("dragged-off press emitted %d gestures", n)
	}
	if m.engine.CellView(c).Revealed || m.engine.CellView(c).Flagged {
		t.Fatal("abandoned gesture changed the board")
	}
}

func TestRestartCancelsPendingLongPress(t *testing.T) {
	m, clock := newTestModel(t, beginnerPreset, nil)
	c := core.C(0, 0)

	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionPress, tea.MouseButtonLeft))
	m, _ = update(t, m, runeKey('r'))
	clock.Advance(2 * time.Second)

	m, n := drain(t, m)
	if n != 0 || m.engine.CellView(c).Flagged {
		t.Fatalf("long press survived a restart: %d gestures", n)
	}
}

func TestRestartDropsRecognizedLongPress(t *testing.T) {
	m, clock := newTestModel(t, beginnerPreset, nil)
	c := core.C(0, 0)

	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionPress, tea.MouseButtonLeft))
	clock.Advance(time.Second) // long press recognized and queued
	m, _ = update(t, m, runeKey('r'))

	m, n := drain(t, m)
	if n != 1 {
		t.Fatalf("drained %d gestures, want the queued long press", n)
	}
	if m.engine.CellView(c).Flagged {
		t.Fatal("long press from the previous board flagged the new one")
	}

	// Gestures on the new board still apply.
	m, _ = update(t, m, mouseAt(m, c, tea.MouseActionPress, tea.MouseButtonLeft))
	clock.Advance(time.Second)
	m, _ = drain(t, m)
	if !m.engine.CellView(c).Flagged {
		t.Fatal("long press on the new board should flag")
	}
}

func TestResizeRecentersBoard(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)
	before := m.view.originX

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.view.originX <= before {
		t.Fatalf("originX %d did not grow from %d", m.view.originX, before)
	}
	if m.view.screen.Width() != 120 {
		t.Fatalf("screen width = %d", m.view.screen.Width())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Fatal("quitting model should render nothing")
	}
	select {
	case <-m.ctx.Done():
	default:
		t.Fatal("quit should stop the gesture listener")
	}
	if msg := waitGesture(m.ctx, m.events)(); msg != nil {
		t.Fatalf("listener after quit returned %v", msg)
	}
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)
	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}
	if m.view.screen.Row(0) == "" {
		t.Fatal("header row empty")
	}
}

func TestApplyMatchesGestureMapping(t *testing.T) {
	m, _ := newTestModel(t, beginnerPreset, nil)
	c := core.C(3, 3)

	m, _ = update(t, m, gestureMsg(gesture.Event{Cell: c, Kind: gesture.KindSecondary}))
	if !m.engine.CellView(c).Flagged {
		t.Fatal("secondary should flag")
	}
	m, _ = update(t, m, gestureMsg(gesture.Event{Cell: c, Kind: gesture.KindTap}))
	if m.engine.CellView(c).Revealed {
		t.Fatal("tap on a flagged cell must be a no-op")
	}
}
