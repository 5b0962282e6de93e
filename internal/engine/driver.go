package engine

import (
	"math"

	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

// DefaultDeadband is the smallest progress change worth a recomputation.
const DefaultDeadband = 0.001

// Deadband drops progress notifications that barely moved. It remembers only
// the last accepted value.
type Deadband struct {
	Epsilon float64

	last float64
	seen bool
}

// Accept clamps p and reports whether it moved more than Epsilon since the
// last accepted value. The first value is always accepted.
func (d *Deadband) Accept(p float64) (float64, bool) {
	p = themes.ClampProgress(p)
	if d.seen && math.Abs(p-d.last) <= d.Epsilon {
		return p, false
	}
	d.last = p
	d.seen = true
	return p, true
}

// Last returns the last accepted progress.
func (d *Deadband) Last() (float64, bool) {
	return d.last, d.seen
}

// Driver feeds progress notifications through a deadband into an engine.
type Driver struct {
	engine   *Engine
	deadband Deadband
	ticks    int
}

// NewDriver wraps e with a deadband of epsilon. A negative epsilon uses
// DefaultDeadband.
func NewDriver(e *Engine, epsilon float64) *Driver {
	if epsilon < 0 {
		epsilon = DefaultDeadband
	}
	return &Driver{
		engine:   e,
		deadband: Deadband{Epsilon: epsilon},
	}
}

// Notify handles one progress notification and reports whether it produced a
// tick.
func (d *Driver) Notify(p float64) bool {
	p, ok := d.deadband.Accept(p)
	if !ok {
		return false
	}
	d.engine.Tick(p)
	d.ticks++
	return true
}

// Last returns the progress of the most recent tick.
func (d *Driver) Last() (float64, bool) {
	return d.deadband.Last()
}

// Ticks returns how many notifications produced a publication.
func (d *Driver) Ticks() int {
	return d.ticks
}
