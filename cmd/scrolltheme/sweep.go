package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/scrolltheme/internal/config"
	"github.com/thatcatcamp/scrolltheme/internal/engine"
	"github.com/thatcatcamp/scrolltheme/internal/logging"
	"github.com/thatcatcamp/scrolltheme/internal/scroll"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Walk the scroll range and print the palette at each step",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initApp(); err != nil {
			exitf("Error: %v\n", err)
		}

		table := mustStopTable()
		live, _ := cmd.Flags().GetBool("live")
		if live {
			duration, _ := cmd.Flags().GetDuration("duration")
			if err := sweepLive(table, duration); err != nil {
				exitf("Error: %v\n", err)
			}
			return
		}

		steps, _ := cmd.Flags().GetInt("steps")
		if steps < 1 {
			exitf("Error: --steps must be at least 1\n")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PROGRESS\tSECTION\tINTERVAL\tBACKGROUND\tFOREGROUND\tPRIMARY\tCONTRAST")
		for i := 0; i <= steps; i++ {
			frame := engine.Compute(table, float64(i)/float64(steps))
			fmt.Fprintf(w, "%.3f\t%s\t%d\t%s\t%s\t%s\t%.2f\n",
				frame.Progress,
				scroll.SectionFor(frame.Progress),
				frame.Interval,
				frame.Tokens[themes.TokenBackground],
				frame.Tokens[themes.TokenForeground],
				frame.Tokens[themes.TokenPrimary],
				frame.Contrast)
		}
		w.Flush()
	},
}

// sweepLive scrolls through the page at frame cadence and prints every
// palette the driver publishes
func sweepLive(table *themes.StopTable, duration time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var current float64
	sink := engine.SinkFunc(func(ts themes.TokenSet) {
		fmt.Printf("%.3f  background %-22s foreground %s\n",
			current, ts[themes.TokenBackground], ts[themes.TokenForeground])
	})

	eng, err := engine.New(table, sink, engine.WithLogger(logging.Component("engine")))
	if err != nil {
		return err
	}
	driver := engine.NewDriver(eng, config.GetFloat64("engine.deadband"))

	anim := scroll.NewAnimator(0, 1, duration)
	if interval := config.GetDuration("stream.frame_interval"); interval > 0 {
		anim.FrameInterval = interval
	}

	err = anim.Run(ctx, func(p float64) {
		current = themes.ClampProgress(p)
		driver.Notify(p)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Printf("\n%d palettes published\n", driver.Ticks())
	return nil
}

func init() {
	sweepCmd.Flags().Int("steps", 20, "number of steps across [0,1]")
	sweepCmd.Flags().Bool("live", false, "animate at frame cadence instead of printing a table")
	sweepCmd.Flags().Duration("duration", 2*time.Second, "length of a live sweep")
	rootCmd.AddCommand(sweepCmd)
}
