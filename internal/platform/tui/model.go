package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/board"
	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/focus"
	"github.com/vovakirdan/tui-sweeper/internal/gesture"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// gestureBuffer bounds the recognized gestures waiting for the update loop.
const gestureBuffer = 16

// gestureMsg carries a recognized gesture into the update loop.
type gestureMsg gesture.Event

// Options configures a board Model.
type Options struct {
	Preset  config.Preset
	Timing  config.TimingConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional results ledger
	Logger  *log.Logger    // optional; defaults to a discarding logger
	Clock   core.Clock     // optional; defaults to core.SystemClock
	Player  string         // reported in logs, e.g. the SSH user
	Context context.Context
}

// Model is the Bubble Tea model for one board.
type Model struct {
	engine   *board.Engine
	view     *boardView
	ticker   *tickSource
	gestures *gesture.Set
	events   chan gesture.Event
	ctx      context.Context
	cancel   context.CancelFunc

	keyMapper *KeyMapper
	help      help.Model

	preset config.Preset
	store  *storage.Store
	logger *log.Logger
	player string
	config core.RuntimeConfig

	pressCell core.Coord
	pressing  bool
	recorded  bool // whether the finished game has been recorded
	quitting  bool
}

// NewModel creates a model with a fresh board for opts.Preset.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	tickInterval := opts.Timing.Tick()
	if tickInterval <= 0 {
		tickInterval = cfg.TickInterval
	}
	if tickInterval <= 0 {
		tickInterval = core.DefaultTickInterval
	}

	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}

	view := newBoardView(cfg.ScreenW)
	ticker := newTickSource(tickInterval)

	engine, err := board.NewEngine(opts.Preset.Board(), board.Options{
		Seed:     cfg.Seed,
		Clock:    clock,
		Ticker:   ticker,
		Observer: view,
	})
	if err != nil {
		return Model{}, fmt.Errorf("preset %q: %w", opts.Preset.Name, err)
	}
	view.attach(engine)

	events := make(chan gesture.Event, gestureBuffer)
	emit := func(ev gesture.Event) {
		select {
		case events <- ev:
		default:
			logger.Warn("gesture dropped", "cell", ev.Cell, "kind", ev.Kind)
		}
	}

	ctx, cancel := context.WithCancel(parent)
	keyMapper := NewKeyMapper()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:    engine,
		view:      view,
		ticker:    ticker,
		gestures:  gesture.NewSet(clock, opts.Timing.LongPress(), emit),
		events:    events,
		ctx:       ctx,
		cancel:    cancel,
		keyMapper: keyMapper,
		help:      h,
		preset:    opts.Preset,
		store:     opts.Store,
		logger:    logger,
		player:    opts.Player,
		config:    cfg,
	}, nil
}

// Init starts listening for gestures. The tick loop only starts with the
// first reveal.
func (m Model) Init() tea.Cmd {
	return waitGesture(m.ctx, m.events)
}

// waitGesture blocks until a gesture is recognized or the model shuts down.
func waitGesture(ctx context.Context, events <-chan gesture.Event) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-events:
			return gestureMsg(ev)
		case <-ctx.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case gestureMsg:
		ev := gesture.Event(msg)
		if !m.gestures.Current(ev) {
			// Recognized on a board that has since been restarted.
			return m, waitGesture(m.ctx, m.events)
		}
		gesture.Apply(m.engine, ev)
		cmd := m.afterCommand()
		return m, tea.Batch(cmd, waitGesture(m.ctx, m.events))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.shutdown()
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRestart:
		m.restart()
		return m, nil

	case core.ActionReveal, core.ActionFlag:
		s := m.engine.Summary()
		if !s.HasFocus {
			m.engine.SetFocus(core.C(0, 0))
			return m, nil
		}
		if action == core.ActionReveal {
			m.engine.Reveal(s.Focus)
		} else {
			m.engine.ToggleFlag(s.Focus)
		}
		cmd := m.afterCommand()
		return m, cmd
	}

	if action.IsMove() {
		m.engine.MoveFocus(focus.FromAction(action))
	}
	return m, nil
}

// handleMouse feeds pointer events to the per-cell gesture recognizers.
// Recognized gestures come back as gestureMsg.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	c, onBoard := m.view.cellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if !onBoard {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.gestures.CancelOthers(c)
			m.gestures.For(c).Press()
			m.pressCell, m.pressing = c, true
			m.engine.SetFocus(c)
		case tea.MouseButtonRight:
			m.gestures.For(c).Secondary()
		}

	case tea.MouseActionRelease:
		if !m.pressing {
			return m, nil
		}
		m.pressing = false
		if onBoard && c == m.pressCell {
			m.gestures.For(c).Release()
		} else {
			m.gestures.For(m.pressCell).Cancel()
		}

	case tea.MouseActionMotion:
		// Dragging off the pressed cell abandons the gesture.
		if m.pressing && (!onBoard || c != m.pressCell) {
			m.gestures.For(m.pressCell).Cancel()
			m.pressing = false
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.view.resize(msg.Width)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick refreshes the elapsed counter. Ticks from a stopped or
// replaced tick loop are dropped.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	next, ok := m.ticker.accept(msg)
	if !ok {
		return m, nil
	}
	m.engine.Tick()
	return m, next
}

// afterCommand collects the tick loop started by a reveal and records a
// finished game once.
func (m *Model) afterCommand() tea.Cmd {
	cmd := m.ticker.take()
	if m.engine.State().Terminal() && !m.recorded {
		m.recordResult()
		m.recorded = true
	}
	return cmd
}

// restart discards the board and deals a new one with the same preset.
func (m *Model) restart() {
	m.gestures.CancelAll()
	m.pressing = false
	if err := m.engine.Reset(m.preset.Board()); err != nil {
		m.logger.Error("reset failed", "preset", m.preset.Name, "error", err)
		return
	}
	m.recorded = false
	m.view.note = ""
	m.view.redraw()
}

// recordResult logs the finished game and saves it to the ledger.
func (m *Model) recordResult() {
	s := m.engine.Summary()
	cfg := m.engine.Config()
	won := s.State == board.StateWon

	m.logger.Info("game finished",
		"preset", m.preset.Name,
		"outcome", s.State,
		"seconds", s.Elapsed,
		"player", m.player,
	)

	if m.store == nil {
		return
	}

	prevBest, hadBest, err := m.store.BestTime(m.preset.Name)
	if err != nil {
		m.logger.Warn("could not read best time", "error", err)
	}

	_, err = m.store.SaveResult(storage.Result{
		Preset:  m.preset.Name,
		Height:  cfg.Height,
		Width:   cfg.Width,
		Mines:   cfg.Mines,
		Won:     won,
		Seconds: s.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
		return
	}

	if won && (!hadBest || s.Elapsed < prevBest) {
		m.view.note = "(new best)"
		m.view.drawStatus()
	}
}

// shutdown stops the timers and the gesture listener.
func (m *Model) shutdown() {
	m.gestures.CancelAll()
	m.cancel()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".sweeper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.preset.Name, timestamp))

	if err := os.WriteFile(path, []byte(m.view.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// Engine exposes the board engine, for tests and embedding.
func (m Model) Engine() *board.Engine {
	return m.engine
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	helpView := lipgloss.PlaceHorizontal(m.view.screen.Width(), lipgloss.Center,
		helpStyle.Render(m.help.View(m.keyMapper.Keys())))

	return RenderScreen(m.view.screen) + "\n\n" + helpView
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, release and drag events
	)

	_, err = p.Run()
	model.shutdown()
	return err
}
