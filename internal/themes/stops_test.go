package themes

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stop(pos float64) ColorStop {
	return ColorStop{
		Position:   pos,
		Background: HSL{0, 0, 100},
		Primary:    HSL{200, 50, 40},
		Accent:     HSL{40, 90, 50},
	}
}

func TestNewStopTableRejectsInvalid(t *testing.T) {
	badColor := stop(1)
	badColor.Accent = HSL{360, 50, 50}

	tests := []struct {
		name  string
		stops []ColorStop
	}{
		{"empty", nil},
		{"single", []ColorStop{stop(0)}},
		{"first not zero", []ColorStop{stop(0.1), stop(1)}},
		{"last not one", []ColorStop{stop(0), stop(0.9)}},
		{"duplicate position", []ColorStop{stop(0), stop(0.5), stop(0.5), stop(1)}},
		{"decreasing", []ColorStop{stop(0), stop(0.6), stop(0.4), stop(1)}},
		{"nan position", []ColorStop{stop(0), stop(math.NaN()), stop(1)}},
		{"color out of range", []ColorStop{stop(0), badColor}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewStopTable(tt.stops)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, ErrInvalidStopTable), "got %v", err)
		})
	}
}

func TestNewStopTableCopiesInput(t *testing.T) {
	stops := []ColorStop{stop(0), stop(1)}
	table, err := NewStopTable(stops)
	require.NoError(t, err)

	stops[0].Background = HSL{120, 50, 50}
	assert.Equal(t, HSL{0, 0, 100}, table.At(0).Background)

	out := table.Stops()
	out[1].Position = 0.5
	assert.Equal(t, 1.0, table.At(1).Position)
}

func TestMustStopTablePanics(t *testing.T) {
	assert.Panics(t, func() { MustStopTable([]ColorStop{stop(0)}) })
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	require.Equal(t, 14, table.Len())
	assert.Equal(t, "hero", table.At(0).Label)
	assert.Equal(t, "footer", table.At(table.Len()-1).Label)
	assert.Equal(t, HSL{60, 100, 97}, table.At(0).Background)
}

func TestLocate(t *testing.T) {
	table := MustStopTable([]ColorStop{stop(0), stop(0.25), stop(1)})

	tests := []struct {
		p     float64
		i     int
		local float64
	}{
		{-1, 0, 0},
		{0, 0, 0},
		{0.125, 0, 0.5},
		{0.25, 0, 1},
		{0.4375, 1, 0.25},
		{1, 1, 1},
		{7, 1, 1},
		{math.NaN(), 0, 0},
	}

	for _, tt := range tests {
		i, from, to, local := table.Locate(tt.p)
		assert.Equal(t, tt.i, i, "p=%v", tt.p)
		assert.InDelta(t, tt.local, local, 1e-12, "p=%v", tt.p)
		assert.Equal(t, table.At(i), from)
		assert.Equal(t, table.At(i+1), to)
	}
}

func TestLocateCoversUnitRange(t *testing.T) {
	table := DefaultTable()
	for k := 0; k <= 1000; k++ {
		p := float64(k) / 1000
		_, from, to, local := table.Locate(p)
		assert.LessOrEqual(t, from.Position, p)
		assert.GreaterOrEqual(t, to.Position, p)
		assert.True(t, local >= 0 && local <= 1, "p=%v local=%v", p, local)
	}
}
