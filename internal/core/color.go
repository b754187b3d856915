package core

// Color identifies a foreground color for a screen cell. The TUI layer
// maps each value to an ANSI 256-color style; the zero value renders
// with the terminal's default foreground.
type Color uint8

// The palette. The match draws the left paddle cyan, the right paddle
// magenta, the ball yellow and the chrome (net, serve ghost) gray;
// the rest is available to overlays and custom renderers.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	ColorOrange
	ColorGray
)
