package ir

import (
	"fmt"
	"io"
	"strings"
)

// DumpProcedure writes a deterministic human-readable rendition of the
// procedure: blocks in storage order, each with its predecessors, its
// values in program order and its successors. For tracing only; the
// layout is not a stable interface.
func DumpProcedure(w io.Writer, p *Procedure) error {
	if _, err := fmt.Fprintf(w, "procedure {\n"); err != nil {
		return err
	}
	for _, block := range p.blocks {
		if err := dumpBlock(w, p, block); err != nil {
			return err
		}
	}
	if p.NumVariables() > 0 {
		fmt.Fprintf(w, "variables:\n")
		p.variables.Each(func(_ int32, v *Variable) {
			fmt.Fprintf(w, "  var%d: %s\n", v.Index, v.Type)
		})
	}
	_, err := fmt.Fprintf(w, "}\n")
	return err
}

func dumpBlock(w io.Writer, p *Procedure, block *BasicBlock) error {
	if _, err := fmt.Fprintf(w, "block%d: ; frequency = %v\n", block.Index(), block.Frequency()); err != nil {
		return err
	}

	if preds := block.Predecessors(); len(preds) > 0 {
		names := make([]string, len(preds))
		for i, pred := range preds {
			names[i] = fmt.Sprintf("block%d", pred)
		}
		fmt.Fprintf(w, "  preds: %s\n", strings.Join(names, ", "))
	}

	for _, value := range block.Values() {
		fmt.Fprintf(w, "    %s\n", p.Value(value).format(value))
	}

	if succs := block.Successors(); len(succs) > 0 {
		fmt.Fprintf(w, "  succs: %s\n", formatSuccessors(p, block))
	}
	return nil
}

// formatSuccessors labels the two-successor shape explicitly; other
// shapes list edges in order.
func formatSuccessors(p *Procedure, block *BasicBlock) string {
	succs := block.Successors()

	if last := block.Last(); last.IsValid() && p.Value(last).Opcode() == Branch && len(succs) == 2 {
		taken := block.Taken()
		notTaken := block.NotTaken()
		return fmt.Sprintf("taken=block%d(%s), notTaken=block%d(%s)",
			taken.Block, taken.Freq, notTaken.Block, notTaken.Freq)
	}

	names := make([]string, len(succs))
	for i, succ := range succs {
		names[i] = fmt.Sprintf("block%d(%s)", succ.Block, succ.Freq)
	}
	return strings.Join(names, ", ")
}

// FormatProcedure renders the procedure to a string, for logs and
// tests.
func FormatProcedure(p *Procedure) string {
	var b strings.Builder
	_ = DumpProcedure(&b, p)
	return b.String()
}
