package themes

import "math"

// WCAG contrast targets for normal-size text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// darkSurfaceThreshold is the lightness below which a surface counts as dark.
const darkSurfaceThreshold = 50

// IsDarkSurface reports whether a surface with lightness l takes the dark
// branch of every derivation rule.
func IsDarkSurface(l float64) bool {
	return l < darkSurfaceThreshold
}

// RelativeLuminance approximates WCAG relative luminance from HSL lightness
// (0-100) using the sRGB gamma curve.
func RelativeLuminance(l float64) float64 {
	n := clampPercent(l) / 100
	if n <= 0.03928 {
		return n / 12.92
	}
	return math.Pow((n+0.055)/1.055, 2.4)
}

// ContrastRatio is the WCAG ratio between two luminances. It is symmetric and
// never below 1.
func ContrastRatio(lum1, lum2 float64) float64 {
	lighter := math.Max(lum1, lum2)
	darker := math.Min(lum1, lum2)
	return (lighter + 0.05) / (darker + 0.05)
}

// LightnessContrast is the contrast ratio between two colors judged by their
// lightness alone.
func LightnessContrast(a, b HSL) float64 {
	return ContrastRatio(RelativeLuminance(a.L), RelativeLuminance(b.L))
}

// OptimalForeground picks a text color for bg. Dark surfaces get a light,
// slightly warm, low-saturation text; light surfaces get a dark text on the
// complementary hue.
//
// target records the contrast the caller wants (ContrastAAA for body text,
// ContrastAA for secondary text). Both branches already clear AAA on the
// surfaces they are chosen for, so the output does not vary with it.
func OptimalForeground(bg HSL, target float64) HSL {
	if IsDarkSurface(bg.L) {
		return HSL{
			H: bg.H + 20,
			S: math.Max(5, bg.S-10),
			L: 92,
		}.Clamped()
	}
	return HSL{
		H: bg.H + 180,
		S: math.Min(25, bg.S+10),
		L: 20,
	}.Clamped()
}
