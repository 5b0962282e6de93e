// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidStopTable is returned when a keyframe table cannot be used.
var ErrInvalidStopTable = errors.New("invalid color stop table")

// ColorStop binds a scroll position to the three base colors of the page.
type ColorStop struct {
	Position   float64 `json:"position"`
	Label      string  `json:"label,omitempty"`
	Background HSL     `json:"background"`
	Primary    HSL     `json:"primary"`
	Accent     HSL     `json:"accent"`
}

// StopTable is a validated, immutable keyframe table covering [0,1].
type StopTable struct {
	stops []ColorStop
}

// NewStopTable validates stops and returns a table that owns a copy of them.
func NewStopTable(stops []ColorStop) (*StopTable, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidStopTable, len(stops))
	}
	if first := stops[0].Position; first != 0 {
		return nil, fmt.Errorf("%w: first stop must be at 0, got %g", ErrInvalidStopTable, first)
	}
	if last := stops[len(stops)-1].Position; last != 1 {
		return nil, fmt.Errorf("%w: last stop must be at 1, got %g", ErrInvalidStopTable, last)
	}

	for i, s := range stops {
		if math.IsNaN(s.Position) || s.Position < 0 || s.Position > 1 {
			return nil, fmt.Errorf("%w: stop %d position %g outside [0,1]", ErrInvalidStopTable, i, s.Position)
		}
		if i > 0 && s.Position <= stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d position %g does not follow %g",
				ErrInvalidStopTable, i, s.Position, stops[i-1].Position)
		}
		for name, c := range map[string]HSL{"background": s.Background, "primary": s.Primary, "accent": s.Accent} {
			if !c.Valid() {
				return nil, fmt.Errorf("%w: stop %d %s %+v out of range", ErrInvalidStopTable, i, name, c)
			}
		}
	}

	owned := make([]ColorStop, len(stops))
	copy(owned, stops)
	return &StopTable{stops: owned}, nil
}

// MustStopTable is NewStopTable for tables known at compile time.
func MustStopTable(stops []ColorStop) *StopTable {
	t, err := NewStopTable(stops)
	if err != nil {
		panic("MustStopTable: " + err.Error())
	}
	return t
}

// Len returns the number of stops.
func (t *StopTable) Len() int {
	return len(t.stops)
}

// At returns the i-th stop.
func (t *StopTable) At(i int) ColorStop {
	return t.stops[i]
}

// Stops returns a copy of the keyframes.
func (t *StopTable) Stops() []ColorStop {
	out := make([]ColorStop, len(t.stops))
	copy(out, t.stops)
	return out
}

// Locate finds the interval containing p and the linear factor inside it.
// p is clamped into [0,1] first. i is the index of the interval's start stop.
func (t *StopTable) Locate(p float64) (i int, from, to ColorStop, local float64) {
	p = ClampProgress(p)

	for idx := 0; idx < len(t.stops)-1; idx++ {
		a, b := t.stops[idx], t.stops[idx+1]
		if a.Position <= p && p <= b.Position {
			width := b.Position - a.Position
			if width <= 0 {
				return idx, a, b, 0
			}
			return idx, a, b, clampUnit((p - a.Position) / width)
		}
	}

	// Unreachable for a validated table; hold the nearest end.
	last := len(t.stops) - 1
	if p <= t.stops[0].Position {
		return 0, t.stops[0], t.stops[1], 0
	}
	return last - 1, t.stops[last-1], t.stops[last], 1
}
