package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ember/internal/ir"
	"ember/internal/snapshot"
	"ember/internal/ui"
)

var dumpValidate bool

func init() {
	dumpCmd.Flags().BoolVar(&dumpValidate, "check", true, "validate the procedure before dumping")
}

var dumpCmd = &cobra.Command{
	Use:   "dump <snapshot>",
	Short: "Print a procedure snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		proc, err := snapshot.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		if dumpValidate {
			if err := ir.Validate(proc); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
		}
		out := cmd.OutOrStdout()
		if colorEnabled() {
			fmt.Fprint(out, ui.RenderProcedure(args[0], proc))
			return nil
		}
		ir.DumpProcedure(out, proc)
		return nil
	},
}
