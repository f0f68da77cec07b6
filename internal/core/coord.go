// Package core provides fundamental types shared by the sweeper packages.
// It contains no external dependencies so the board engine, the focus
// navigator and the gesture recognizer stay pure and testable.
package core

import "fmt"

// Coord identifies a cell on the board.
// X is the column (increasing right), Y is the row (increasing down).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Within reports whether c lies on a height x width grid.
func (c Coord) Within(height, width int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Index converts the coordinate to a row-major index for a grid of the given width.
func (c Coord) Index(width int) int {
	return c.Y*width + c.X
}

// FromIndex is the inverse of Coord.Index.
func FromIndex(i, width int) Coord {
	return Coord{X: i % width, Y: i / width}
}
