// SPDX-License-Identifier: MIT
package themes

import "math"

// Lerp blends a toward b by t. Saturation and lightness move linearly; hue
// takes the shorter way around the color wheel, so 350 -> 10 passes through 0
// and never through 180.
func Lerp(a, b HSL, t float64) HSL {
	delta := b.H - a.H
	if delta > 180 {
		delta -= 360
	}
	if delta < -180 {
		delta += 360
	}

	return HSL{
		H: wrapHue(a.H + delta*t),
		S: a.S + (b.S-a.S)*t,
		L: a.L + (b.L-a.L)*t,
	}
}

// EaseInOutCubic maps a local factor in [0,1] onto a symmetric cubic curve.
func EaseInOutCubic(t float64) float64 {
	t = clampUnit(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// clampUnit clamps v into [0,1]. NaN becomes 0.
func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// ClampProgress clamps a scroll progress value into [0,1]. Upstream scroll
// arithmetic can overshoot transiently (resizes, elastic scrolling).
func ClampProgress(p float64) float64 {
	return clampUnit(p)
}
