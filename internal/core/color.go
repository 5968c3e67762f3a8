package core

// Color is a foreground color for a screen cell. The platform layer maps
// each value to an ANSI color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightMagenta
	ColorOrange
	ColorGray
)

// Palette lists every color in declaration order.
var Palette = []Color{
	ColorDefault, ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta,
	ColorCyan, ColorWhite, ColorBrightGreen, ColorBrightYellow, ColorBrightCyan,
	ColorBrightMagenta, ColorOrange, ColorGray,
}
