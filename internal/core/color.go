package core

// Color represents a foreground color for a screen cell.
// The platform maps each one to an ANSI 256-color code.
type Color uint8

// Palette used by the lander view.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	return c < colorCount
}
