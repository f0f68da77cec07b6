package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy
	ColorMaroon
	ColorTeal
)

// NumberColors holds the classic colors for adjacency counts 1 through 8.
// Index 0 is unused.
var NumberColors = [9]Color{
	ColorDefault,
	ColorBlue,
	ColorGreen,
	ColorRed,
	ColorNavy,
	ColorMaroon,
	ColorTeal,
	ColorBrightWhite,
	ColorGray,
}
