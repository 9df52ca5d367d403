package ir_test

import (
	"strings"
	"testing"

	"ember/internal/ir"
)

func TestDumpProcedureIsDeterministicAndComplete(t *testing.T) {
	p, blocks := buildDiamond(t)

	first := ir.FormatProcedure(p)
	second := ir.FormatProcedure(p)
	if first != second {
		t.Fatalf("dump is not deterministic:\n%s\n---\n%s", first, second)
	}

	for _, id := range blocks {
		if !strings.Contains(first, "block"+string(rune('0'+id))+":") {
			t.Errorf("dump is missing block%d:\n%s", id, first)
		}
	}
	for _, want := range []string{"taken=block1(Normal)", "notTaken=block2(Normal)", "preds: block1, block2", "Return"} {
		if !strings.Contains(first, want) {
			t.Errorf("dump is missing %q:\n%s", want, first)
		}
	}
}

func TestDumpListsVariables(t *testing.T) {
	p := ir.NewProcedure()
	p.AddVariable(ir.Int64)
	p.AddVariable(ir.Double)

	out := ir.FormatProcedure(p)
	for _, want := range []string{"var0: Int64", "var1: Double"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump is missing %q:\n%s", want, out)
		}
	}
}
