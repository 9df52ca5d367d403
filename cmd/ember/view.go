package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ember/internal/ir"
	"ember/internal/snapshot"
	"ember/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [snapshot]",
	Short: "Page through a procedure interactively",
	Long:  `Opens a procedure snapshot in a scrollable pager. Without an argument the built-in demo procedure is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := "demo"
		proc := buildDemoProc()
		if len(args) == 1 {
			loaded, err := snapshot.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			title = args[0]
			proc = loaded
		}
		if err := ir.Validate(proc); err != nil {
			return fmt.Errorf("%s: %w", title, err)
		}

		if !isTerminal(os.Stdout) {
			ir.DumpProcedure(cmd.OutOrStdout(), proc)
			return nil
		}
		return ui.RunViewer(title, ui.RenderProcedure(title, proc))
	},
}
