// SPDX-License-Identifier: MIT
package scroll

import (
	"context"
	"errors"
	"time"
)

// DefaultFrameInterval approximates one 60Hz animation frame.
const DefaultFrameInterval = 16 * time.Millisecond

var ErrInvalidSweep = errors.New("sweep duration must be positive")

// Animator emits progress values at frame cadence, sweeping linearly from
// From to To over Duration. It stands in for a viewer scrolling the page.
type Animator struct {
	From          float64
	To            float64
	Duration      time.Duration
	FrameInterval time.Duration

	stopChan chan struct{}
}

// NewAnimator creates an animator with the default frame interval.
func NewAnimator(from, to float64, duration time.Duration) *Animator {
	return &Animator{
		From:          from,
		To:            to,
		Duration:      duration,
		FrameInterval: DefaultFrameInterval,
		stopChan:      make(chan struct{}, 1),
	}
}

// Run blocks until the sweep completes, ctx is cancelled, or Stop is called.
// onFrame is called from the calling goroutine with each progress value; the
// first call is From and the last call of a completed sweep is exactly To.
func (a *Animator) Run(ctx context.Context, onFrame func(p float64)) error {
	if a.Duration <= 0 {
		return ErrInvalidSweep
	}
	interval := a.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if a.stopChan == nil {
		a.stopChan = make(chan struct{}, 1)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	onFrame(a.From)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.stopChan:
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if elapsed >= a.Duration {
				onFrame(a.To)
				return nil
			}
			onFrame(a.At(elapsed))
		}
	}
}

// Start runs the sweep in a goroutine. The returned channel receives Run's
// result and is then closed.
func (a *Animator) Start(ctx context.Context, onFrame func(p float64)) <-chan error {
	if a.stopChan == nil {
		a.stopChan = make(chan struct{}, 1)
	}
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- a.Run(ctx, onFrame)
	}()
	return done
}

// Stop ends a running sweep early.
func (a *Animator) Stop() {
	select {
	case a.stopChan <- struct{}{}:
	default:
	}
}

// At returns the progress elapsed into the sweep.
func (a *Animator) At(elapsed time.Duration) float64 {
	if a.Duration <= 0 || elapsed >= a.Duration {
		return a.To
	}
	if elapsed <= 0 {
		return a.From
	}
	frac := float64(elapsed) / float64(a.Duration)
	return a.From + (a.To-a.From)*frac
}
