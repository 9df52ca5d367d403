package ir_test

import (
	"testing"

	"ember/internal/ir"
)

func TestMaxFrequency(t *testing.T) {
	tests := []struct {
		a, b, want ir.Frequency
	}{
		{ir.FrequencyNormal, ir.FrequencyNormal, ir.FrequencyNormal},
		{ir.FrequencyNormal, ir.FrequencyRare, ir.FrequencyNormal},
		{ir.FrequencyRare, ir.FrequencyNormal, ir.FrequencyNormal},
		{ir.FrequencyRare, ir.FrequencyRare, ir.FrequencyRare},
	}
	for _, tt := range tests {
		if got := ir.MaxFrequency(tt.a, tt.b); got != tt.want {
			t.Errorf("MaxFrequency(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
		if got := ir.MaxFrequency(tt.b, tt.a); got != tt.want {
			t.Errorf("MaxFrequency(%s, %s) = %s, want %s (not commutative)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestAddPredecessorIsIdempotent(t *testing.T) {
	p := ir.NewProcedure()
	a := p.AddBlock(1)
	b := p.AddBlock(1)
	block := p.Block(b)

	if !block.AddPredecessor(a) {
		t.Fatalf("first AddPredecessor should report a change")
	}
	if block.AddPredecessor(a) {
		t.Fatalf("second AddPredecessor should report no change")
	}
	if got := len(block.Predecessors()); got != 1 {
		t.Fatalf("predecessor count = %d, want 1", got)
	}
}

func TestRemovePredecessorAbsent(t *testing.T) {
	p := ir.NewProcedure()
	a := p.AddBlock(1)
	b := p.AddBlock(1)
	block := p.Block(b)

	if block.RemovePredecessor(a) {
		t.Fatalf("removing an absent predecessor should report no change")
	}
	block.AddPredecessor(a)
	if !block.RemovePredecessor(a) {
		t.Fatalf("removing a present predecessor should report a change")
	}
	if block.RemovePredecessor(a) {
		t.Fatalf("removal is not idempotent")
	}
}

func TestRemoveAndReplaceSuccessor(t *testing.T) {
	p := ir.NewProcedure()
	a := p.AddBlock(1)
	b := p.AddBlock(1)
	c := p.AddBlock(1)
	block := p.Block(a)

	block.SetSuccessors2(
		ir.FrequentBlock{Block: b, Freq: ir.FrequencyNormal},
		ir.FrequentBlock{Block: c, Freq: ir.FrequencyRare},
	)

	if !block.ReplaceSuccessor(b, c) {
		t.Fatalf("ReplaceSuccessor of a present target should report a change")
	}
	if block.ReplaceSuccessor(b, c) {
		t.Fatalf("ReplaceSuccessor of an absent target should report no change")
	}
	if got := block.Taken().Block; got != c {
		t.Fatalf("taken target = block%d, want block%d", got, c)
	}

	if !block.RemoveSuccessor(c) {
		t.Fatalf("RemoveSuccessor of a present target should report a change")
	}
	// The second edge to c survives; only the first match is removed.
	if got := len(block.Successors()); got != 1 {
		t.Fatalf("successor count = %d, want 1", got)
	}

	block.SetSuccessors2(
		ir.FrequentBlock{Block: b, Freq: ir.FrequencyNormal},
		ir.FrequentBlock{Block: c, Freq: ir.FrequencyNormal},
	)
	if !block.RemoveSuccessor2(c, b) {
		t.Fatalf("RemoveSuccessor2 should remove the first matching edge")
	}
	if got := len(block.Successors()); got != 1 {
		t.Fatalf("successor count after RemoveSuccessor2 = %d, want 1", got)
	}
	if got := block.Successors()[0].Block; got != c {
		t.Fatalf("remaining successor = block%d, want block%d", got, c)
	}
}

func TestTakenRequiresTwoSuccessors(t *testing.T) {
	p := ir.NewProcedure()
	a := p.AddBlock(1)
	b := p.AddBlock(1)
	block := p.Block(a)
	block.SetSuccessors(ir.FrequentBlock{Block: b, Freq: ir.FrequencyNormal})

	defer func() {
		if recover() == nil {
			t.Fatalf("Taken on a one-successor block should panic")
		}
	}()
	block.Taken()
}

func TestFallthroughIsLastSuccessor(t *testing.T) {
	p := ir.NewProcedure()
	a := p.AddBlock(1)
	b := p.AddBlock(1)
	c := p.AddBlock(1)
	block := p.Block(a)

	block.SetSuccessors2(
		ir.FrequentBlock{Block: b, Freq: ir.FrequencyNormal},
		ir.FrequentBlock{Block: c, Freq: ir.FrequencyRare},
	)
	if got := block.Fallthrough().Block; got != c {
		t.Fatalf("fallthrough = block%d, want block%d", got, c)
	}

	block.SetSuccessors(ir.FrequentBlock{Block: b, Freq: ir.FrequencyNormal})
	if got := block.Fallthrough().Block; got != b {
		t.Fatalf("fallthrough = block%d, want block%d", got, b)
	}
}

func TestAppendNonTerminal(t *testing.T) {
	p := ir.NewProcedure()
	entry := p.AddBlock(1)
	b := ir.NewBuilder(p, entry)

	c1 := b.AddIntConstant(ir.Int32, 1)
	ret := b.AddReturn(c1)

	housekeeping := p.AddIntConstant(ir.Int32, 2)
	p.Block(entry).AppendNonTerminal(housekeeping)

	values := p.Block(entry).Values()
	if got := values[len(values)-1]; got != ret {
		t.Fatalf("terminal is v%d, want v%d (terminal must stay last)", got, ret)
	}
	if got := values[len(values)-2]; got != housekeeping {
		t.Fatalf("injected value is v%d, want v%d", got, housekeeping)
	}
}
