// SPDX-License-Identifier: MIT

// Package engine turns scroll progress notifications into published palettes.
package engine

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

var (
	ErrNoStopTable = errors.New("engine requires a color stop table")
	ErrNoSink      = errors.New("engine requires a sink")
)

// Frame describes one palette computation.
type Frame struct {
	Progress float64         `json:"progress"`
	Interval int             `json:"interval"`
	LocalT   float64         `json:"local_t"`
	EasedT   float64         `json:"eased_t"`
	Contrast float64         `json:"contrast"`
	Tokens   themes.TokenSet `json:"-"`
}

// Engine computes palettes from a fixed keyframe table and hands them to a
// sink. It is not safe for concurrent use; each driver owns one.
type Engine struct {
	table  *themes.StopTable
	sink   Sink
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine bound to table and sink.
func New(table *themes.StopTable, sink Sink, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, ErrNoStopTable
	}
	if sink == nil {
		return nil, ErrNoSink
	}

	e := &Engine{
		table:  table,
		sink:   sink,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Table returns the keyframe table the engine interpolates over.
func (e *Engine) Table() *themes.StopTable {
	return e.table
}

// Compute derives the palette for progress p without publishing it.
func (e *Engine) Compute(p float64) Frame {
	return Compute(e.table, p)
}

// Tick computes the palette for p and publishes it in one call.
func (e *Engine) Tick(p float64) Frame {
	frame := e.Compute(p)

	if frame.Contrast < themes.ContrastAA {
		e.logger.Warn().
			Float64("progress", frame.Progress).
			Float64("contrast", frame.Contrast).
			Msg("foreground contrast below AA")
	}
	e.logger.Debug().
		Float64("progress", frame.Progress).
		Int("interval", frame.Interval).
		Float64("eased_t", frame.EasedT).
		Msg("tick")

	e.sink.Publish(frame.Tokens)
	return frame
}

// Compute is the pure palette computation for table at progress p.
func Compute(table *themes.StopTable, p float64) Frame {
	p = themes.ClampProgress(p)
	i, from, to, local := table.Locate(p)
	eased := themes.EaseInOutCubic(local)

	bg := themes.Lerp(from.Background, to.Background, eased)
	primary := themes.Lerp(from.Primary, to.Primary, eased)
	accent := themes.Lerp(from.Accent, to.Accent, eased)

	tokens := themes.Derive(bg, primary, accent)
	return Frame{
		Progress: p,
		Interval: i,
		LocalT:   local,
		EasedT:   eased,
		Contrast: themes.LightnessContrast(tokens[themes.TokenForeground], tokens[themes.TokenBackground]),
		Tokens:   tokens,
	}
}
