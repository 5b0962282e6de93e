// SPDX-License-Identifier: MIT

// Package stopsets loads, stores and exports keyframe tables.
package stopsets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// File is the on-disk YAML form of a stop set.
type File struct {
	Name        string     `yaml:"name" validate:"required,max=64"`
	Description string     `yaml:"description,omitempty"`
	Stops       []FileStop `yaml:"stops" validate:"min=2,dive"`
}

// FileStop is one keyframe in a stop set file.
type FileStop struct {
	Position   float64 `yaml:"position" validate:"gte=0,lte=1"`
	Label      string  `yaml:"label,omitempty"`
	Background FileHSL `yaml:"background"`
	Primary    FileHSL `yaml:"primary"`
	Accent     FileHSL `yaml:"accent"`
}

// FileHSL is an HSL triple as written in stop set files.
type FileHSL struct {
	H float64 `yaml:"h" validate:"gte=0,lt=360"`
	S float64 `yaml:"s" validate:"gte=0,lte=100"`
	L float64 `yaml:"l" validate:"gte=0,lte=100"`
}

func (c FileHSL) hsl() themes.HSL {
	return themes.HSL{H: c.H, S: c.S, L: c.L}
}

func fileHSL(c themes.HSL) FileHSL {
	return FileHSL{H: c.H, S: c.S, L: c.L}
}

// Parse decodes and validates a stop set document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stop set: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", themes.ErrInvalidStopTable, err)
	}
	if _, err := f.Table(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads a stop set from a YAML file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stop set file: %w", err)
	}
	return Parse(data)
}

// WriteFile writes stops to path as YAML.
func WriteFile(path, name, description string, stops []themes.ColorStop) error {
	f := NewFile(name, description, stops)
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode stop set: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stop set file: %w", err)
	}
	return nil
}

// NewFile builds the file form of stops.
func NewFile(name, description string, stops []themes.ColorStop) *File {
	f := &File{Name: name, Description: description}
	for _, s := range stops {
		f.Stops = append(f.Stops, FileStop{
			Position:   s.Position,
			Label:      s.Label,
			Background: fileHSL(s.Background),
			Primary:    fileHSL(s.Primary),
			Accent:     fileHSL(s.Accent),
		})
	}
	return f
}

// ColorStops converts the file form to engine keyframes.
func (f *File) ColorStops() []themes.ColorStop {
	stops := make([]themes.ColorStop, 0, len(f.Stops))
	for _, s := range f.Stops {
		stops = append(stops, themes.ColorStop{
			Position:   s.Position,
			Label:      s.Label,
			Background: s.Background.hsl(),
			Primary:    s.Primary.hsl(),
			Accent:     s.Accent.hsl(),
		})
	}
	return stops
}

// Table validates the keyframes and returns them as a table.
func (f *File) Table() (*themes.StopTable, error) {
	return themes.NewStopTable(f.ColorStops())
}
