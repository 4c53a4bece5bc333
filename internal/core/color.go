package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the renderer. ColorBlack and ColorWhite carry a contrasting
// background so that both teams stay visible on any terminal theme.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorArena
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorGray
)

// String returns the palette name, mostly for test output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorArena:
		return "arena"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
