package core

// Color identifies the foreground color of a screen cell. The terminal
// renderer maps each value to an ANSI 256-color code.
type Color uint8

// The palette covers the maze, the four pursuers, and HUD text. Render
// code picks from these rather than raw ANSI codes so the mapping lives
// in one place.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightMagenta
	ColorBrightWhite
	ColorOrange
	ColorGray

	numColors
)
