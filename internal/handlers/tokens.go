package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/scrolltheme/internal/engine"
	"github.com/thatcatcamp/scrolltheme/internal/scroll"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

var errNoPosition = errors.New("progress, or height and viewport, are required")

// scrollPosition is either a normalized progress or the raw scroll geometry
// it is derived from. progress wins when both are given.
type scrollPosition struct {
	Progress *float64 `form:"progress" json:"progress"`
	Top      *float64 `form:"top" json:"top"`
	Height   *float64 `form:"height" json:"height" binding:"omitempty,gte=0"`
	Viewport *float64 `form:"viewport" json:"viewport" binding:"omitempty,gte=0"`
}

func (q scrollPosition) resolve() (float64, error) {
	if q.Progress != nil {
		return *q.Progress, nil
	}
	if q.Height == nil || q.Viewport == nil {
		return 0, errNoPosition
	}
	top := 0.0
	if q.Top != nil {
		top = *q.Top
	}
	return scroll.Progress(top, *q.Height, *q.Viewport), nil
}

type progressQuery struct {
	scrollPosition
	Format string `form:"format" binding:"omitempty,oneof=hsl hex"`
}

func bindProgress(c *gin.Context) (float64, string, error) {
	var q progressQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return 0, "", err
	}
	p, err := q.resolve()
	return p, q.Format, err
}

// TokensResponse is the JSON form of one computed palette
type TokensResponse struct {
	Progress float64           `json:"progress"`
	Section  string            `json:"section"`
	Interval int               `json:"interval"`
	From     string            `json:"from,omitempty"`
	To       string            `json:"to,omitempty"`
	LocalT   float64           `json:"local_t"`
	EasedT   float64           `json:"eased_t"`
	Contrast float64           `json:"contrast"`
	Tokens   map[string]string `json:"tokens"`
}

// NewTokensResponse describes frame against the table it was computed from
func NewTokensResponse(table *themes.StopTable, frame engine.Frame, format string) TokensResponse {
	tokens := frame.Tokens.Strings()
	if format == "hex" {
		tokens = frame.Tokens.HexStrings()
	}
	return TokensResponse{
		Progress: frame.Progress,
		Section:  string(scroll.SectionFor(frame.Progress)),
		Interval: frame.Interval,
		From:     table.At(frame.Interval).Label,
		To:       table.At(frame.Interval + 1).Label,
		LocalT:   frame.LocalT,
		EasedT:   frame.EasedT,
		Contrast: frame.Contrast,
		Tokens:   tokens,
	}
}

// TokensHandler returns the palette for ?progress= as JSON
func TokensHandler(table *themes.StopTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, format, err := bindProgress(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		frame := engine.Compute(table, p)
		c.JSON(http.StatusOK, NewTokensResponse(table, frame, format))
	}
}

// ThemeCSSHandler returns the palette for ?progress= as a stylesheet
func ThemeCSSHandler(table *themes.StopTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _, err := bindProgress(c)
		if err != nil {
			c.String(http.StatusBadRequest, "/* %s */\n", err.Error())
			return
		}

		frame := engine.Compute(table, p)
		c.Header("Cache-Control", "public, max-age=3600")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.GenerateCSS(frame.Tokens)))
	}
}

// StopsHandler lists the keyframe table
func StopsHandler(table *themes.StopTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"count": table.Len(),
			"stops": table.Stops(),
		})
	}
}
