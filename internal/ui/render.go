// Package ui renders procedures and instruction metadata for terminal
// consumption: a styled dump for quick reading and an interactive pager
// for larger procedures.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ember/internal/air"
	"ember/internal/ir"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	blockStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	edgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	rareStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// RenderProcedure returns a colorized procedure listing. The text
// content matches ir.FormatProcedure line for line; only styling is
// added, so the plain dump stays the canonical form.
func RenderProcedure(title string, proc *ir.Procedure) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s: %d blocks, %d values, %d variables",
		title, proc.NumBlocks(), proc.NumValues(), proc.NumVariables())))
	b.WriteString("\n")

	for _, line := range strings.Split(ir.FormatProcedure(proc), "\n") {
		b.WriteString(styleLine(line))
		b.WriteString("\n")
	}
	return b.String()
}

func styleLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "block"):
		return blockStyle.Render(line)
	case strings.HasPrefix(trimmed, "preds:"), strings.HasPrefix(trimmed, "succs:"):
		if strings.Contains(trimmed, "Rare") {
			return rareStyle.Render(line)
		}
		return edgeStyle.Render(line)
	case strings.HasPrefix(trimmed, "variables:"):
		return labelStyle.Render(line)
	default:
		return line
	}
}

// RenderOpcodeTable returns a table of every regular opcode, its
// defined arities and the operand metadata of each form. Irregular
// opcodes are listed with a placeholder so the inventory is complete.
func RenderOpcodeTable() string {
	nameWidth := 0
	for op := air.Opcode(0); op < air.NumOpcodes; op++ {
		if w := runewidth.StringWidth(op.String()); w > nameWidth {
			nameWidth = w
		}
	}

	var rows []string
	for op := air.Opcode(0); op < air.NumOpcodes; op++ {
		name := runewidth.FillRight(op.String(), nameWidth)
		if op.IsIrregular() {
			rows = append(rows, fmt.Sprintf("%s  %s", name, rareStyle.Render("(irregular, no fixed form)")))
			continue
		}
		arities := air.Arities(op)
		if len(arities) == 0 {
			rows = append(rows, fmt.Sprintf("%s  %s", name, edgeStyle.Render("no operands")))
			continue
		}
		var forms []string
		for _, n := range arities {
			fs, _ := air.OperandForms(op, n)
			parts := make([]string, len(fs))
			for i, f := range fs {
				parts[i] = fmt.Sprintf("%s:%s:%s", f.Role, f.Bank, f.Width)
			}
			forms = append(forms, strings.Join(parts, ", "))
		}
		rows = append(rows, fmt.Sprintf("%s  %s", name, strings.Join(forms, "  |  ")))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("opcode forms"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}
