// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL is a hue/saturation/lightness color. Hue is in degrees and wraps at 360,
// saturation and lightness are percentages.
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	L float64 `json:"l" yaml:"l"`
}

// Clamped returns c with hue wrapped into [0,360) and saturation/lightness
// clamped into [0,100].
func (c HSL) Clamped() HSL {
	return HSL{
		H: wrapHue(c.H),
		S: clampPercent(c.S),
		L: clampPercent(c.L),
	}
}

// Valid reports whether every component is already inside its legal range.
func (c HSL) Valid() bool {
	return inRange(c.H, 0, 360) && c.H < 360 &&
		inRange(c.S, 0, 100) && inRange(c.L, 0, 100)
}

// String formats c the way CSS custom properties expect it: "h s% l%",
// one decimal place each.
func (c HSL) String() string {
	c = c.Clamped()
	h := round1(c.H)
	if h >= 360 {
		h = 0
	}
	return fmt.Sprintf("%.1f %.1f%% %.1f%%", h, round1(c.S), round1(c.L))
}

// Hex converts c to an sRGB hex string (#rrggbb).
func (c HSL) Hex() string {
	c = c.Clamped()
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex()
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to exactly 360
	if h >= 360 {
		h = 0
	}
	return h
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
