// SPDX-License-Identifier: MIT
package engine

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

type recordingSink struct {
	published []themes.TokenSet
}

func (r *recordingSink) Publish(tokens themes.TokenSet) {
	r.published = append(r.published, tokens)
}

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	e, err := New(themes.DefaultTable(), sink, opts...)
	require.NoError(t, err)
	return e, sink
}

func TestNewRequiresTableAndSink(t *testing.T) {
	_, err := New(nil, &recordingSink{})
	assert.ErrorIs(t, err, ErrNoStopTable)

	_, err = New(themes.DefaultTable(), nil)
	assert.ErrorIs(t, err, ErrNoSink)
}

func TestTickPublishesExactlyOnce(t *testing.T) {
	e, sink := newTestEngine(t)

	frame := e.Tick(0.42)
	require.Len(t, sink.published, 1)
	assert.True(t, sink.published[0].Complete())
	assert.True(t, frame.Tokens.Equal(sink.published[0]))
}

func TestComputeDoesNotPublish(t *testing.T) {
	e, sink := newTestEngine(t)
	e.Compute(0.3)
	assert.Empty(t, sink.published)
}

func TestEndpointsMatchStops(t *testing.T) {
	table := themes.DefaultTable()

	start := Compute(table, 0)
	assert.Equal(t, table.At(0).Background, start.Tokens[themes.TokenBackground])
	assert.Equal(t, table.At(0).Primary, start.Tokens[themes.TokenPrimary])

	last := table.At(table.Len() - 1)
	end := Compute(table, 1)
	assert.Equal(t, last.Background, end.Tokens[themes.TokenBackground])
	assert.Equal(t, last.Accent, end.Tokens[themes.TokenAccent])
}

func TestComputeAtBridgeStop(t *testing.T) {
	frame := Compute(themes.DefaultTable(), 0.10)
	bg := frame.Tokens[themes.TokenBackground]

	assert.Greater(t, bg.H, 40.0)
	assert.Less(t, bg.H, 60.0)
	assert.False(t, themes.IsDarkSurface(bg.L))
	assert.LessOrEqual(t, frame.Tokens[themes.TokenForeground].L, 25.0)
}

func TestComputeClampsProgress(t *testing.T) {
	table := themes.DefaultTable()

	assert.True(t, Compute(table, -3).Tokens.Equal(Compute(table, 0).Tokens))
	assert.True(t, Compute(table, 1.7).Tokens.Equal(Compute(table, 1).Tokens))
	assert.Equal(t, 0.0, Compute(table, math.NaN()).Progress)
}

func TestComputeIsIdempotent(t *testing.T) {
	table := themes.DefaultTable()
	for k := 0; k <= 100; k++ {
		p := float64(k) / 100
		a, b := Compute(table, p), Compute(table, p)
		assert.Equal(t, a.Tokens, b.Tokens, "p=%v", p)
	}
}

func TestComputeEasesInsideInterval(t *testing.T) {
	table := themes.MustStopTable([]themes.ColorStop{
		{Position: 0, Background: themes.HSL{H: 0, S: 0, L: 100}, Primary: themes.HSL{H: 0, S: 50, L: 40}, Accent: themes.HSL{H: 40, S: 90, L: 50}},
		{Position: 1, Background: themes.HSL{H: 0, S: 0, L: 60}, Primary: themes.HSL{H: 0, S: 50, L: 40}, Accent: themes.HSL{H: 40, S: 90, L: 50}},
	})

	frame := Compute(table, 0.25)
	assert.Equal(t, 0, frame.Interval)
	assert.InDelta(t, 0.25, frame.LocalT, 1e-12)
	assert.InDelta(t, 0.0625, frame.EasedT, 1e-12)
	assert.InDelta(t, 97.5, frame.Tokens[themes.TokenBackground].L, 1e-9)
}

func TestTickWarnsOnLowContrast(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)

	mid := themes.HSL{H: 200, S: 10, L: 49}
	table := themes.MustStopTable([]themes.ColorStop{
		{Position: 0, Background: mid, Primary: mid, Accent: mid},
		{Position: 1, Background: mid, Primary: mid, Accent: mid},
	})
	sink := &recordingSink{}
	e, err := New(table, sink, WithLogger(logger))
	require.NoError(t, err)

	frame := e.Tick(0.5)
	assert.Less(t, frame.Contrast, themes.ContrastAA)
	assert.Contains(t, buf.String(), "foreground contrast below AA")
	assert.Len(t, sink.published, 1)
}

func TestDefaultTableContrast(t *testing.T) {
	table := themes.DefaultTable()
	for k := 0; k <= 200; k++ {
		frame := Compute(table, float64(k)/200)
		assert.GreaterOrEqual(t, frame.Contrast, themes.ContrastAA, "p=%v", frame.Progress)
	}
}

func TestStore(t *testing.T) {
	var s Store
	assert.Nil(t, s.Latest())
	assert.Zero(t, s.Published())

	e, err := New(themes.DefaultTable(), &s)
	require.NoError(t, err)
	e.Tick(0)
	first := s.Latest()
	e.Tick(1)

	assert.Equal(t, uint64(2), s.Published())
	assert.False(t, first.Equal(s.Latest()))
	assert.True(t, s.Latest().Equal(Compute(themes.DefaultTable(), 1).Tokens))
}
