package core

// Color is the foreground color of a screen cell. The terminal shell maps
// each value to a 256-color code; games only pick from this set.
type Color uint8

// Colors available to the field, its entities and the HUD.
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

	// NumColors counts the colors above.
	NumColors = int(ColorGray) + 1
)

// cropRamp runs from a fresh green shoot to ripe wheat.
var cropRamp = [...]Color{ColorGreen, ColorBrightGreen, ColorYellow, ColorBrightYellow}

// CropColor returns the color of a standing crop of the given level,
// counting from 1. Levels past either end of the ramp are clamped, and
// level 0 (nothing standing) is ColorDefault.
func CropColor(level int) Color {
	if level <= 0 {
		return ColorDefault
	}
	return cropRamp[Clamp(level, 1, len(cropRamp))-1]
}
