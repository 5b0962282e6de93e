package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/scrolltheme/internal/engine"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

// Tracker follows one shared viewer: scroll reports go through a deadband
// driver that publishes into a Store, and readers take the latest palette
// from the Store without touching the driver.
type Tracker struct {
	mu     sync.Mutex
	driver *engine.Driver
	store  *engine.Store
}

// NewTracker builds a tracker over table and publishes the palette for
// progress 0 so readers never see an empty store.
func NewTracker(table *themes.StopTable, deadband float64, logger zerolog.Logger) (*Tracker, error) {
	store := &engine.Store{}
	eng, err := engine.New(table, store, engine.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		driver: engine.NewDriver(eng, deadband),
		store:  store,
	}
	t.driver.Notify(0)
	return t, nil
}

// Report feeds one progress notification and reports whether it published.
func (t *Tracker) Report(p float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.driver.Notify(p)
}

// Progress returns the progress of the latest publication.
func (t *Tracker) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, _ := t.driver.Last()
	return p
}

// Latest returns the most recently published palette.
func (t *Tracker) Latest() themes.TokenSet {
	return t.store.Latest()
}

// Published returns how many palettes the tracker has published.
func (t *Tracker) Published() uint64 {
	return t.store.Published()
}

// ReportResponse acknowledges a scroll report
type ReportResponse struct {
	Progress  float64 `json:"progress"`
	Published bool    `json:"published"`
}

// ReportHandler accepts {"progress": p} or {"top", "height", "viewport"}
func ReportHandler(tracker *Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body scrollPosition
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := body.resolve()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		published := tracker.Report(p)
		c.JSON(http.StatusOK, ReportResponse{
			Progress:  themes.ClampProgress(p),
			Published: published,
		})
	}
}

// LatestResponse is the palette the tracker last published
type LatestResponse struct {
	Progress  float64           `json:"progress"`
	Published uint64            `json:"published"`
	Tokens    map[string]string `json:"tokens"`
}

// LatestHandler returns the tracker's current palette, ?format=hsl|hex
func LatestHandler(tracker *Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Format string `form:"format" binding:"omitempty,oneof=hsl hex"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		latest := tracker.Latest()
		tokens := latest.Strings()
		if q.Format == "hex" {
			tokens = latest.HexStrings()
		}
		c.JSON(http.StatusOK, LatestResponse{
			Progress:  tracker.Progress(),
			Published: tracker.Published(),
			Tokens:    tokens,
		})
	}
}
