package models

import (
	"time"
)

// StopSet is a named keyframe table authored by an operator
type StopSet struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Stops []Stop `gorm:"foreignKey:StopSetID;constraint:OnDelete:CASCADE"`
}

// Stop is one keyframe of a stop set
type Stop struct {
	ID        uint    `gorm:"primaryKey"`
	StopSetID uint    `gorm:"not null;index"`
	Position  float64 `gorm:"not null"` // Scroll progress, 0..1
	Label     string

	BackgroundH float64
	BackgroundS float64
	BackgroundL float64
	PrimaryH    float64
	PrimaryS    float64
	PrimaryL    float64
	AccentH     float64
	AccentS     float64
	AccentL     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides for consistent naming
func (StopSet) TableName() string {
	return "stop_sets"
}

func (Stop) TableName() string {
	return "stops"
}
