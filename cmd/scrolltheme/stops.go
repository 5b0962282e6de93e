// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/scrolltheme/internal/db"
	"github.com/thatcatcamp/scrolltheme/internal/stopsets"
	"github.com/thatcatcamp/scrolltheme/internal/themes"
)

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "Manage color stop tables",
	Long:  "Validate, import, export and list keyframe tables",
}

var stopsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a stop set file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := stopsets.LoadFile(args[0])
		if err != nil {
			exitf("Error: %v\n", err)
		}
		fmt.Printf("%s: %d stops OK\n", f.Name, len(f.Stops))
	},
}

var stopsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a stop set file in the database",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitf("Error: %v\n", err)
		}

		f, err := stopsets.LoadFile(args[0])
		if err != nil {
			exitf("Error: %v\n", err)
		}

		set, err := stopsets.Save(db.GetDB(), f.Name, f.Description, f.ColorStops())
		if err != nil {
			exitf("Error saving stop set: %v\n", err)
		}
		fmt.Printf("Stop set imported: %s (%d stops)\n", set.Name, len(set.Stops))
	},
}

var stopsExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Write a stop set to a YAML file",
	Long:  "Write a stored stop set, or the builtin table when name is \"builtin\", to a YAML file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, path := args[0], args[1]

		if name == "builtin" {
			if err := stopsets.WriteFile(path, themes.DefaultStopSetName, "built-in keyframes", themes.DefaultStops()); err != nil {
				exitf("Error: %v\n", err)
			}
			fmt.Printf("Exported builtin stops to %s\n", path)
			return
		}

		if err := initSystemDB(); err != nil {
			exitf("Error: %v\n", err)
		}
		set, err := stopsets.Get(db.GetDB(), name)
		if err != nil {
			exitf("Error: %v\n", err)
		}
		if err := stopsets.WriteFile(path, set.Name, set.Description, stopsets.ColorStops(set)); err != nil {
			exitf("Error: %v\n", err)
		}
		fmt.Printf("Exported %s to %s\n", name, path)
	},
}

var stopsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored stop sets",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitf("Error: %v\n", err)
		}

		sets, err := stopsets.List(db.GetDB())
		if err != nil {
			exitf("Error: %v\n", err)
		}
		if len(sets) == 0 {
			fmt.Println("No stop sets stored")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDESCRIPTION\tUPDATED")
		for _, s := range sets {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Description, s.UpdatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
	},
}

var stopsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored stop set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitf("Error: %v\n", err)
		}

		if err := stopsets.Delete(db.GetDB(), args[0]); err != nil {
			exitf("Error: %v\n", err)
		}
		fmt.Printf("Stop set deleted: %s\n", args[0])
	},
}

func init() {
	stopsCmd.AddCommand(stopsValidateCmd)
	stopsCmd.AddCommand(stopsImportCmd)
	stopsCmd.AddCommand(stopsExportCmd)
	stopsCmd.AddCommand(stopsListCmd)
	stopsCmd.AddCommand(stopsDeleteCmd)
	rootCmd.AddCommand(stopsCmd)
}
