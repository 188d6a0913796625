package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorSky
	ColorPaleSky
)

// trailColors fade from bright to dark; index 0 is the newest sample.
var trailColors = []Color{ColorBrightWhite, ColorWhite, ColorGray, ColorDarkGray}

// FadeColor picks a trail color for sample i of n, mirroring an alpha ramp
// that decreases linearly with age.
func FadeColor(i, n int) Color {
	if n <= 0 || i <= 0 {
		return trailColors[0]
	}
	idx := i * len(trailColors) / (n + 1)
	if idx >= len(trailColors) {
		idx = len(trailColors) - 1
	}
	return trailColors[idx]
}
