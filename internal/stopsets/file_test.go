package stopsets

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

const dusk = `
name: dusk
description: light to dark
stops:
  - position: 0
    label: top
    background: {h: 60, s: 100, l: 97}
    primary: {h: 14, s: 61, l: 48}
    accent: {h: 43, s: 98, l: 53}
  - position: 0.5
    background: {h: 200, s: 30, l: 50}
    primary: {h: 200, s: 80, l: 40}
    accent: {h: 43, s: 98, l: 53}
  - position: 1
    label: bottom
    background: {h: 220, s: 30, l: 10}
    primary: {h: 220, s: 80, l: 60}
    accent: {h: 43, s: 98, l: 53}
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(dusk))
	require.NoError(t, err)

	assert.Equal(t, "dusk", f.Name)
	assert.Equal(t, "light to dark", f.Description)
	require.Len(t, f.Stops, 3)
	assert.Equal(t, "top", f.Stops[0].Label)

	table, err := f.Table()
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, themes.HSL{H: 220, S: 30, L: 10}, table.At(2).Background)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing name", `
stops:
  - {position: 0, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
  - {position: 1, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
`},
		{"one stop", `
name: solo
stops:
  - {position: 0, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
`},
		{"hue out of range", `
name: wrap
stops:
  - {position: 0, background: {h: 360, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
  - {position: 1, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
`},
		{"not increasing", `
name: back
stops:
  - {position: 0, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
  - {position: 0.6, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
  - {position: 0.3, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
  - {position: 1, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
`},
		{"open end", `
name: short
stops:
  - {position: 0, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
  - {position: 0.8, background: {h: 0, s: 0, l: 0}, primary: {h: 0, s: 0, l: 0}, accent: {h: 0, s: 0, l: 0}}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, themes.ErrInvalidStopTable), "got %v", err)
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated"))
	assert.Error(t, err)
}

func TestWriteAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets", "vetkai.yaml")
	stops := themes.DefaultStops()

	require.NoError(t, WriteFile(path, "vetkai", "built-in", stops))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "vetkai", f.Name)
	assert.Equal(t, stops, f.ColorStops())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
