package stopsets

import (
	"errors"
	"fmt"

	"github.com/thatcatcamp/scrolltheme/internal/models"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("stop set not found")

// Save stores stops under name, replacing any existing set with that name.
// The keyframes are validated before anything is written.
func Save(db *gorm.DB, name, description string, stops []themes.ColorStop) (*models.StopSet, error) {
	if name == "" {
		return nil, fmt.Errorf("stop set name is required")
	}
	if _, err := themes.NewStopTable(stops); err != nil {
		return nil, err
	}

	set := &models.StopSet{Name: name, Description: description}
	for _, s := range stops {
		set.Stops = append(set.Stops, toModel(s))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.StopSet
		err := tx.Where("name = ?", name).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Where("stop_set_id = ?", existing.ID).Delete(&models.Stop{}).Error; err != nil {
				return fmt.Errorf("failed to clear stops: %w", err)
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to replace stop set: %w", err)
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to look up stop set: %w", err)
		}

		if err := tx.Create(set).Error; err != nil {
			return fmt.Errorf("failed to create stop set: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Get returns the stored set with its stops in position order.
func Get(db *gorm.DB, name string) (*models.StopSet, error) {
	var set models.StopSet
	err := db.Where("name = ?", name).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load stop set: %w", err)
	}
	return &set, nil
}

// Load returns the stored set as a validated keyframe table.
func Load(db *gorm.DB, name string) (*themes.StopTable, error) {
	set, err := Get(db, name)
	if err != nil {
		return nil, err
	}
	return themes.NewStopTable(ColorStops(set))
}

// List returns all stored sets without their stops, ordered by name.
func List(db *gorm.DB) ([]models.StopSet, error) {
	var sets []models.StopSet
	if err := db.Order("name ASC").Find(&sets).Error; err != nil {
		return nil, fmt.Errorf("failed to list stop sets: %w", err)
	}
	return sets, nil
}

// Delete removes a stored set and its stops.
func Delete(db *gorm.DB, name string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var set models.StopSet
		if err := tx.Where("name = ?", name).First(&set).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, name)
			}
			return fmt.Errorf("failed to look up stop set: %w", err)
		}
		if err := tx.Where("stop_set_id = ?", set.ID).Delete(&models.Stop{}).Error; err != nil {
			return fmt.Errorf("failed to delete stops: %w", err)
		}
		if err := tx.Delete(&set).Error; err != nil {
			return fmt.Errorf("failed to delete stop set: %w", err)
		}
		return nil
	})
}

// ColorStops converts a stored set's rows to keyframes.
func ColorStops(set *models.StopSet) []themes.ColorStop {
	stops := make([]themes.ColorStop, 0, len(set.Stops))
	for _, s := range set.Stops {
		stops = append(stops, themes.ColorStop{
			Position:   s.Position,
			Label:      s.Label,
			Background: themes.HSL{H: s.BackgroundH, S: s.BackgroundS, L: s.BackgroundL},
			Primary:    themes.HSL{H: s.PrimaryH, S: s.PrimaryS, L: s.PrimaryL},
			Accent:     themes.HSL{H: s.AccentH, S: s.AccentS, L: s.AccentL},
		})
	}
	return stops
}

func toModel(s themes.ColorStop) models.Stop {
	return models.Stop{
		Position:    s.Position,
		Label:       s.Label,
		BackgroundH: s.Background.H,
		BackgroundS: s.Background.S,
		BackgroundL: s.Background.L,
		PrimaryH:    s.Primary.H,
		PrimaryS:    s.Primary.S,
		PrimaryL:    s.Primary.L,
		AccentH:     s.Accent.H,
		AccentS:     s.Accent.S,
		AccentL:     s.Accent.L,
	}
}
