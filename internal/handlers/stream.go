// SPDX-License-Identifier: MIT
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/scrolltheme/internal/engine"
	"github.com/thatcatcamp/scrolltheme/internal/scroll"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

const defaultStreamDuration = 2 * time.Second

// StreamOptions bounds the frame stream
type StreamOptions struct {
	MaxDuration   time.Duration
	FrameInterval time.Duration
	Deadband      float64
	Logger        zerolog.Logger
}

type streamQuery struct {
	From     *float64 `form:"from"`
	To       *float64 `form:"to"`
	Duration string   `form:"duration"`
}

// StreamFrame is the payload of one "tokens" event
type StreamFrame struct {
	Progress float64           `json:"progress"`
	Tokens   map[string]string `json:"tokens"`
}

// StreamHandler sweeps progress from ?from= to ?to= over ?duration= at frame
// cadence and sends every published palette as a server-sent event
func StreamHandler(table *themes.StopTable, opts StreamOptions) gin.HandlerFunc {
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = 30 * time.Second
	}

	return func(c *gin.Context) {
		var q streamQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		from, to := 0.0, 1.0
		if q.From != nil {
			from = themes.ClampProgress(*q.From)
		}
		if q.To != nil {
			to = themes.ClampProgress(*q.To)
		}

		duration := defaultStreamDuration
		if q.Duration != "" {
			d, err := time.ParseDuration(q.Duration)
			if err != nil || d <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive Go duration, e.g. 2s"})
				return
			}
			duration = d
		}
		if duration > opts.MaxDuration {
			duration = opts.MaxDuration
		}

		ctx := c.Request.Context()
		frames := make(chan StreamFrame, 8)

		var current float64
		sink := engine.SinkFunc(func(ts themes.TokenSet) {
			select {
			case frames <- StreamFrame{Progress: current, Tokens: ts.Strings()}:
			case <-ctx.Done():
			}
		})
		eng, err := engine.New(table, sink, engine.WithLogger(opts.Logger))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		driver := engine.NewDriver(eng, opts.Deadband)

		anim := scroll.NewAnimator(from, to, duration)
		if opts.FrameInterval > 0 {
			anim.FrameInterval = opts.FrameInterval
		}

		go func() {
			defer close(frames)
			err := anim.Run(ctx, func(p float64) {
				current = themes.ClampProgress(p)
				driver.Notify(p)
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				opts.Logger.Warn().Err(err).Msg("frame stream ended early")
			}
		}()

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Status(http.StatusOK)

		sent := 0
		for frame := range frames {
			c.Render(-1, sse.Event{
				Id:    strconv.Itoa(sent),
				Event: "tokens",
				Data:  frame,
			})
			c.Writer.Flush()
			sent++
		}

		c.Render(-1, sse.Event{
			Event: "done",
			Data:  gin.H{"frames": sent},
		})
		c.Writer.Flush()
	}
}
