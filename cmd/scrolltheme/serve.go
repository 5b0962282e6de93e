package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/scrolltheme/internal/config"
	"github.com/thatcatcamp/scrolltheme/internal/handlers"
	"github.com/thatcatcamp/scrolltheme/internal/logging"
	"github.com/thatcatcamp/scrolltheme/internal/middleware"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Serve palettes as JSON, CSS and a server-sent event stream, plus a preview page",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initApp(); err != nil {
			exitf("Error: %v\n", err)
		}

		table := mustStopTable()
		log := logging.Component("server")
		log.Info().Int("stops", table.Len()).Str("source", config.GetString("theme.source")).Msg("color stops loaded")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		r, err := newRouter(ctx, table)
		if err != nil {
			exitf("Error: %v\n", err)
		}

		addr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info().Str("addr", addr).Msg("starting HTTP server")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			log.Info().Msg("shutting down")
			return server.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			exitf("Error: %v\n", err)
		}
	},
}

// newRouter wires every route onto a fresh gin engine
func newRouter(ctx context.Context, table *themes.StopTable) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logging.Component("http")))
	if config.GetBool("server.https_redirect") {
		r.Use(middleware.HTTPSRedirectMiddleware())
	}
	r.Use(middleware.IPFilterMiddleware(config.GetStringSlice("server.blocked_ips"), logging.Component("ipfilter")))
	r.Use(middleware.SecurityHeadersMiddleware(config.GetBool("server.hsts")))

	streamLimiter := middleware.NewRateLimiter(ctx,
		config.GetInt("ratelimit.stream_capacity"),
		config.GetDuration("ratelimit.interval"))
	r.Use(middleware.RateLimitMiddleware(streamLimiter, "/tokens/stream"))

	reportLimiter := middleware.NewRateLimiter(ctx,
		config.GetInt("ratelimit.report_capacity"),
		config.GetDuration("ratelimit.interval"))
	r.Use(middleware.RateLimitMiddleware(reportLimiter, "/progress"))

	tracker, err := handlers.NewTracker(table, config.GetFloat64("engine.deadband"), logging.Component("tracker"))
	if err != nil {
		return nil, err
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "scrolltheme",
		})
	})

	r.GET("/", handlers.PreviewHandler(table))
	r.GET("/stops", handlers.StopsHandler(table))
	r.GET("/tokens", handlers.TokensHandler(table))
	r.GET("/theme.css", handlers.ThemeCSSHandler(table))
	r.GET("/tokens/latest", handlers.LatestHandler(tracker))
	r.POST("/progress", handlers.ReportHandler(tracker))
	r.GET("/tokens/stream", handlers.StreamHandler(table, handlers.StreamOptions{
		MaxDuration:   config.GetDuration("stream.max_duration"),
		FrameInterval: config.GetDuration("stream.frame_interval"),
		Deadband:      config.GetFloat64("engine.deadband"),
		Logger:        logging.Component("stream"),
	}))

	return r, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
