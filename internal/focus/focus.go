// Package focus maps a directional key to the next keyboard-focused cell.
// Navigation is row-major: Left and Right wrap across row boundaries,
// Up and Down stop at the top and bottom edges.
package focus

import "github.com/vovakirdan/tui-sweeper/internal/core"

// Key is a directional navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the DOM-style name of the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	default:
		return "None"
	}
}

// ParseKey accepts DOM key names ("ArrowLeft") as well as terminal names
// ("left", "h"). Unknown names yield KeyNone.
func ParseKey(name string) Key {
	switch name {
	case "ArrowUp", "up", "k":
		return KeyUp
	case "ArrowDown", "down", "j":
		return KeyDown
	case "ArrowLeft", "left", "h":
		return KeyLeft
	case "ArrowRight", "right", "l":
		return KeyRight
	}
	return KeyNone
}

// FromAction converts a movement action to a Key.
func FromAction(a core.Action) Key {
	switch a {
	case core.ActionUp:
		return KeyUp
	case core.ActionDown:
		return KeyDown
	case core.ActionLeft:
		return KeyLeft
	case core.ActionRight:
		return KeyRight
	}
	return KeyNone
}

// Next returns the coordinate focus moves to from current when key is pressed
// on a height x width grid. The boolean is false when focus does not move:
// Up on the first row, Down on the last row, Left at (0,0), Right at the last
// cell, an unknown key, or a current coordinate outside the grid.
func Next(current core.Coord, key Key, height, width int) (core.Coord, bool) {
	if !current.Within(height, width) {
		return core.Coord{}, false
	}

	col, row := current.X, current.Y

	switch key {
	case KeyUp:
		if row > 0 {
			return core.C(col, row-1), true
		}
	case KeyDown:
		if row < height-1 {
			return core.C(col, row+1), true
		}
	case KeyLeft:
		if col > 0 {
			return core.C(col-1, row), true
		}
		if row > 0 {
			return core.C(width-1, row-1), true
		}
	case KeyRight:
		if col < width-1 {
			return core.C(col+1, row), true
		}
		if row < height-1 {
			return core.C(0, row+1), true
		}
	}

	return core.Coord{}, false
}
