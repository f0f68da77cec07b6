package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/board"
	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Board layout constants
const (
	cellW       = 3 // "[x]" when focused, " x " otherwise
	headerRows  = 2 // counters line + gap
	footerRows  = 2 // gap + status line
	minMarginX  = 1
	maxCounter  = 999
	hiddenGlyph = '▪'
	zeroGlyph   = '·'
)

// boardView draws the board into a screen buffer. It is the engine's
// Observer: cell and summary events repaint only what changed, a Reset is
// followed by a full redraw from the model.
type boardView struct {
	screen  *core.Screen
	engine  *board.Engine
	height  int
	width   int
	originX int
	originY int
	summary board.Summary
	note    string // extra status text, e.g. a new best time
}

func newBoardView(screenW int) *boardView {
	return &boardView{screen: core.NewScreen(screenW, 1)}
}

// attach binds the engine and performs the first layout.
func (v *boardView) attach(e *board.Engine) {
	v.engine = e
	v.redraw()
}

// CellChanged repaints a single cell.
func (v *boardView) CellChanged(c core.Coord, cv board.CellView) {
	if v.engine == nil {
		return
	}
	v.drawCell(c, cv)
}

// SummaryChanged repaints the counters, the status line and the focus ring.
func (v *boardView) SummaryChanged(s board.Summary) {
	prev := v.summary
	v.summary = s
	if v.engine == nil {
		return
	}

	if prev.Focus != s.Focus || prev.HasFocus != s.HasFocus {
		if prev.HasFocus {
			v.drawCell(prev.Focus, v.engine.CellView(prev.Focus))
		}
		if s.HasFocus {
			v.drawCell(s.Focus, v.engine.CellView(s.Focus))
		}
	}
	v.drawHeader()
	v.drawStatus()
}

// resize adapts the buffer to a new terminal width.
func (v *boardView) resize(screenW int) {
	v.screen.Resize(screenW, v.screen.Height())
	v.redraw()
}

// redraw lays the board out again and paints everything.
func (v *boardView) redraw() {
	if v.engine == nil {
		return
	}
	cfg := v.engine.Config()
	v.height, v.width = cfg.Height, cfg.Width
	v.summary = v.engine.Summary()

	screenW := v.screen.Width()
	if need := v.width*cellW + 2*minMarginX; screenW < need {
		screenW = need
	}
	v.screen.Resize(screenW, headerRows+v.height+footerRows)
	v.originX = (screenW - v.width*cellW) / 2
	v.originY = headerRows

	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			c := core.C(x, y)
			v.drawCell(c, v.engine.CellView(c))
		}
	}
	v.drawHeader()
	v.drawStatus()
}

// cellAt maps a terminal position to a board coordinate.
func (v *boardView) cellAt(screenX, screenY int) (core.Coord, bool) {
	if screenX < v.originX || screenY < v.originY {
		return core.Coord{}, false
	}
	c := core.C((screenX-v.originX)/cellW, screenY-v.originY)
	if !c.Within(v.height, v.width) {
		return core.Coord{}, false
	}
	return c, true
}

func (v *boardView) drawCell(c core.Coord, cv board.CellView) {
	sx := v.originX + c.X*cellW
	sy := v.originY + c.Y

	left, right := ' ', ' '
	if v.summary.HasFocus && v.summary.Focus == c {
		left, right = '[', ']'
	}
	glyph, color := cellGlyph(cv)

	v.screen.SetColored(sx, sy, left, core.ColorYellow)
	v.screen.SetColored(sx+1, sy, glyph, color)
	v.screen.SetColored(sx+2, sy, right, core.ColorYellow)
}

// cellGlyph picks the rune and color of a cell.
func cellGlyph(cv board.CellView) (rune, core.Color) {
	switch {
	case cv.Masked:
		return ' ', core.ColorDefault
	case cv.Misflagged:
		return 'X', core.ColorMaroon
	case cv.Detonated:
		return '*', core.ColorBrightRed
	case cv.Revealed && cv.Mine:
		return '*', core.ColorWhite
	case cv.Flagged:
		return 'F', core.ColorRed
	case !cv.Revealed:
		return hiddenGlyph, core.ColorGray
	case cv.Adjacent == 0:
		return zeroGlyph, core.ColorGray
	default:
		return rune('0' + cv.Adjacent), core.NumberColors[cv.Adjacent]
	}
}

func (v *boardView) drawHeader() {
	for x := 0; x < v.screen.Width(); x++ {
		v.screen.Set(x, 0, ' ')
	}

	mines := fmt.Sprintf("mines %s", counter(v.summary.FlagsRemaining))
	clock := fmt.Sprintf("time %s", counter(v.summary.Elapsed))
	span := v.width * cellW

	v.screen.DrawText(v.originX, 0, mines, core.ColorRed)
	v.screen.DrawText(v.originX+span-len(clock), 0, clock, core.ColorRed)

	face, color := stateFace(v.summary.State)
	v.screen.DrawText(v.originX+(span-len(face))/2, 0, face, color)
}

func (v *boardView) drawStatus() {
	y := v.screen.Height() - 1
	for x := 0; x < v.screen.Width(); x++ {
		v.screen.Set(x, y, ' ')
	}

	text, color := statusLine(v.summary)
	if v.note != "" {
		text += " " + v.note
	}
	v.screen.DrawTextCentered(y, text, color)
}

// counter formats a three-digit display, clamped the way a seven-segment
// counter would be.
func counter(n int) string {
	switch {
	case n > maxCounter:
		n = maxCounter
	case n < -99:
		n = -99
	}
	if n < 0 {
		return fmt.Sprintf("-%02d", -n)
	}
	return fmt.Sprintf("%03d", n)
}

func stateFace(s board.State) (string, core.Color) {
	switch s {
	case board.StateWon:
		return "B)", core.ColorGreen
	case board.StateLost:
		return "X(", core.ColorBrightRed
	default:
		return ":)", core.ColorYellow
	}
}

func statusLine(s board.Summary) (string, core.Color) {
	switch s.State {
	case board.StatePending:
		return "click or press space to start", core.ColorGray
	case board.StateWon:
		return fmt.Sprintf("cleared in %ds, r for a new board", s.Elapsed), core.ColorGreen
	case board.StateLost:
		return "boom, r to try again", core.ColorBrightRed
	default:
		return fmt.Sprintf("%d cells hidden", s.Hidden), core.ColorGray
	}
}
