package themes

import "math"

// Border sits ±12 lightness away from bg, away from the surface's own side.
func Border(bg HSL) HSL {
	l := bg.L - 12
	if IsDarkSurface(bg.L) {
		l = bg.L + 12
	}
	return HSL{H: bg.H, S: math.Max(5, bg.S-5), L: l}.Clamped()
}

// Card is a slightly elevated surface.
func Card(bg HSL) HSL {
	if IsDarkSurface(bg.L) {
		return HSL{
			H: bg.H,
			S: math.Min(25, bg.S+3),
			L: math.Min(20, bg.L+4),
		}.Clamped()
	}
	return HSL{
		H: bg.H,
		S: math.Max(0, bg.S-3),
		L: math.Min(100, bg.L+2),
	}.Clamped()
}

// Muted is a quieter surface for secondary panels.
func Muted(bg HSL) HSL {
	l := bg.L - 5
	if IsDarkSurface(bg.L) {
		l = bg.L + 8
	}
	return HSL{H: bg.H, S: math.Max(5, bg.S-5), L: l}.Clamped()
}

// Secondary is the complement of primary, pinned to a lightness that reads
// against bg.
func Secondary(primary, bg HSL) HSL {
	l := 25.0
	if IsDarkSurface(bg.L) {
		l = 75
	}
	return HSL{
		H: primary.H + 180,
		S: math.Max(10, primary.S-8),
		L: l,
	}.Clamped()
}

// Destructive is a fixed error red, brighter on dark surfaces.
func Destructive(bg HSL) HSL {
	if IsDarkSurface(bg.L) {
		return HSL{H: 0, S: 70, L: 60}
	}
	return HSL{H: 0, S: 84, L: 50}
}

// Ring is the focus outline: accent on dark surfaces, primary on light ones.
func Ring(bg, primary, accent HSL) HSL {
	if IsDarkSurface(bg.L) {
		return accent.Clamped()
	}
	return primary.Clamped()
}

// SlateDeep is a darker, richer primary.
func SlateDeep(primary HSL) HSL {
	return HSL{
		H: primary.H,
		S: math.Min(primary.S+5, 100),
		L: math.Max(primary.L-10, 10),
	}.Clamped()
}

// SlateLight is a washed-out primary.
func SlateLight(primary HSL) HSL {
	return HSL{
		H: primary.H,
		S: math.Max(primary.S-10, 5),
		L: math.Min(primary.L+25, 80),
	}.Clamped()
}

// SaffronGlow is a brightened accent.
func SaffronGlow(accent HSL) HSL {
	return HSL{
		H: accent.H,
		S: math.Min(accent.S+5, 100),
		L: math.Min(accent.L+7, 65),
	}.Clamped()
}

// SaffronDark is a deepened accent that keeps its saturation.
func SaffronDark(accent HSL) HSL {
	return HSL{
		H: accent.H,
		S: math.Max(accent.S-5, 70),
		L: math.Max(accent.L-10, 35),
	}.Clamped()
}

// Derive computes the complete token set from the three interpolated base
// colors.
func Derive(bg, primary, accent HSL) TokenSet {
	bg = bg.Clamped()
	primary = primary.Clamped()
	accent = accent.Clamped()

	foreground := OptimalForeground(bg, ContrastAAA)
	border := Border(bg)
	card := Card(bg)
	destructive := Destructive(bg)

	return TokenSet{
		TokenBackground:            bg,
		TokenForeground:            foreground,
		TokenPrimary:               primary,
		TokenPrimaryForeground:     OptimalForeground(primary, ContrastAAA),
		TokenAccent:                accent,
		TokenAccentForeground:      OptimalForeground(accent, ContrastAAA),
		TokenBorder:                border,
		TokenCard:                  card,
		TokenCardForeground:        foreground,
		TokenMuted:                 Muted(bg),
		TokenMutedForeground:       OptimalForeground(bg, ContrastAA),
		TokenSecondary:             Secondary(primary, bg),
		TokenSecondaryForeground:   foreground,
		TokenPopover:               card,
		TokenPopoverForeground:     foreground,
		TokenDestructive:           destructive,
		TokenDestructiveForeground: OptimalForeground(destructive, ContrastAAA),
		TokenInput:                 border,
		TokenRing:                  Ring(bg, primary, accent),
		TokenSlateDeep:             SlateDeep(primary),
		TokenSlateLight:            SlateLight(primary),
		TokenSaffronGlow:           SaffronGlow(accent),
		TokenSaffronDark:           SaffronDark(accent),
	}
}
