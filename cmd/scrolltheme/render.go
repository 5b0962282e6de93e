package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/scrolltheme/internal/engine"
	"github.com/thatcatcamp/scrolltheme/internal/handlers"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the palette for one scroll position",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initApp(); err != nil {
			exitf("Error: %v\n", err)
		}

		progress, _ := cmd.Flags().GetFloat64("progress")
		format, _ := cmd.Flags().GetString("format")

		table := mustStopTable()
		frame := engine.Compute(table, progress)

		switch format {
		case "css":
			fmt.Print(themes.GenerateCSS(frame.Tokens))
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(handlers.NewTokensResponse(table, frame, "hsl")); err != nil {
				exitf("Error: %v\n", err)
			}
		case "hex", "hsl":
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TOKEN\tVALUE")
			for _, t := range themes.AllTokens {
				value := frame.Tokens[t].String()
				if format == "hex" {
					value = frame.Tokens[t].Hex()
				}
				fmt.Fprintf(w, "%s\t%s\n", t, value)
			}
			w.Flush()
			fmt.Printf("\nprogress %.3f  interval %d  contrast %.2f:1\n", frame.Progress, frame.Interval, frame.Contrast)
		default:
			exitf("Error: unknown format %q (want css, json, hex or hsl)\n", format)
		}
	},
}

func init() {
	renderCmd.Flags().Float64("progress", 0, "scroll progress in [0,1]")
	renderCmd.Flags().String("format", "css", "output format: css, json, hex or hsl")
	rootCmd.AddCommand(renderCmd)
}
