// Package scroll models the scroll-position sampler that feeds the engine.
package scroll

import "github.com/thatcatcamp/scrolltheme/internal/themes"

// Section is a coarse page region derived from scroll progress.
type Section string

const (
	SectionHero       Section = "hero"
	SectionTransition Section = "transition"
	SectionDark       Section = "dark"
	SectionFooter     Section = "footer"
)

// Progress normalizes a scroll offset into [0,1]. scrollHeight is the full
// document height and viewport the visible height. A page shorter than its
// viewport always reports 0.
func Progress(scrollTop, scrollHeight, viewport float64) float64 {
	scrollable := scrollHeight - viewport
	if scrollable <= 0 {
		return 0
	}
	return themes.ClampProgress(scrollTop / scrollable)
}

// SectionFor classifies p into the page region it falls in.
func SectionFor(p float64) Section {
	p = themes.ClampProgress(p)
	switch {
	case p < 0.15:
		return SectionHero
	case p < 0.35:
		return SectionTransition
	case p < 0.75:
		return SectionDark
	default:
		return SectionFooter
	}
}
