package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ember/internal/ui"
)

var opcodesCmd = &cobra.Command{
	Use:   "opcodes",
	Short: "List instruction opcodes and their operand forms",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderOpcodeTable())
		return nil
	},
}
