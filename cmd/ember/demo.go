package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ember/internal/ir"
	"ember/internal/snapshot"
	"ember/internal/ui"
)

var demoOut string

func init() {
	demoCmd.Flags().StringVar(&demoOut, "out", "", "write the procedure snapshot to this path")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a sample procedure and show its CFG analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		proc := buildDemoProc()
		if err := ir.Validate(proc); err != nil {
			return fmt.Errorf("demo procedure is invalid: %w", err)
		}

		out := cmd.OutOrStdout()
		if colorEnabled() {
			fmt.Fprint(out, ui.RenderProcedure("demo", proc))
		} else {
			ir.DumpProcedure(out, proc)
		}

		doms := proc.DominatorsOrCompute()
		loops := proc.NaturalLoopsOrCompute()
		fmt.Fprintln(out)
		for i := 0; i < proc.NumBlocks(); i++ {
			id := ir.BlockID(i)
			if !doms.IsReachable(int(id)) {
				fmt.Fprintf(out, "block%d: unreachable\n", id)
				continue
			}
			fmt.Fprintf(out, "block%d: idom=%d depth=%d\n", id, doms.Idom(int(id)), loops.LoopDepth(int(id)))
		}
		fmt.Fprintf(out, "loops: %d\n", loops.NumLoops())

		if demoOut != "" {
			if err := snapshot.WriteFile(demoOut, proc); err != nil {
				return err
			}
			fmt.Fprintf(out, "snapshot written to %s\n", demoOut)
		}
		return nil
	},
}

// buildDemoProc builds a counted loop summing 0..n-1:
//
//	entry -> header -> body -> header
//	                -> exit
func buildDemoProc() *ir.Procedure {
	proc := ir.NewProcedure()
	entry := proc.AddBlock(1.0)
	header := proc.AddBlock(10.0)
	body := proc.AddBlock(10.0)
	exit := proc.AddBlock(1.0)

	sum := proc.AddVariable(ir.Int32)
	i := proc.AddVariable(ir.Int32)

	eb := ir.NewBuilder(proc, entry)
	zero := eb.AddIntConstant(ir.Int32, 0)
	eb.AddVariableSet(sum, zero)
	eb.AddVariableSet(i, zero)
	eb.AddJump(header)

	hb := ir.NewBuilder(proc, header)
	iv := hb.AddVariableGet(i)
	n := hb.AddArgument(ir.Int32, 0)
	cond := hb.AddBinary(ir.KindFor(ir.LessThan), iv, n)
	hb.AddBranch(cond, body, ir.FrequentBlock{Block: exit, Freq: ir.FrequencyNormal})

	bb := ir.NewBuilder(proc, body)
	sv := bb.AddVariableGet(sum)
	biv := bb.AddVariableGet(i)
	bb.AddVariableSet(sum, bb.AddBinary(ir.KindFor(ir.Add), sv, biv))
	one := bb.AddIntConstant(ir.Int32, 1)
	bb.AddVariableSet(i, bb.AddBinary(ir.KindFor(ir.Add), biv, one))
	bb.AddJump(header)

	xb := ir.NewBuilder(proc, exit)
	result := xb.AddVariableGet(sum)
	xb.AddReturn(result)

	proc.ResetValueOwners()
	return proc
}
