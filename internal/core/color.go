package core

// Color represents a foreground or background colour for a screen cell.
// ColorDefault leaves the terminal's own colour in place.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Tile colours used by the board and on-screen keyboard.
const (
	ColorExact   = ColorGreen
	ColorPresent = ColorYellow
	ColorAbsent  = ColorDarkGray
)
