// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "scrolltheme",
	Short: "scrolltheme - scroll-driven color theme engine",
	Long: `scrolltheme recomputes a complete design-token palette from a page's
scroll progress, blending between keyframes along the shortest hue path and
deriving text, border and surface colors that stay legible everywhere.

It can print palettes, sweep the whole scroll range, manage keyframe tables,
and serve palettes over HTTP.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides log.level)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
