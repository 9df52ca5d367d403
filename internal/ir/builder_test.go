package ir_test

import (
	"testing"

	"ember/internal/ir"
)

func TestAddJumpInstallsBothEdgeDirections(t *testing.T) {
	p := ir.NewProcedure()
	entry := p.AddBlock(1)
	target := p.AddBlock(1)

	b := ir.NewBuilder(p, entry)
	b.AddJump(target)

	succs := p.Successors(entry)
	if len(succs) != 1 {
		t.Fatalf("successor count = %d, want 1", len(succs))
	}
	if succs[0].Block != target || succs[0].Freq != ir.FrequencyNormal {
		t.Fatalf("successor = (block%d, %s), want (block%d, Normal)", succs[0].Block, succs[0].Freq, target)
	}
	if preds := p.Predecessors(target); len(preds) != 1 || preds[0] != entry {
		t.Fatalf("predecessors of target = %v, want [block%d]", preds, entry)
	}
}

func TestRetargetingJumpDoesNotDuplicatePredecessors(t *testing.T) {
	p := ir.NewProcedure()
	entry := p.AddBlock(1)
	target := p.AddBlock(1)

	b := ir.NewBuilder(p, entry)
	b.AddJump(target)
	// Re-seal with a jump to the same target: the successor list is
	// rebuilt and the predecessor entry must not duplicate.
	b.AddJump(target)

	if succs := p.Successors(entry); len(succs) != 1 {
		t.Fatalf("successor count after retarget = %d, want 1", len(succs))
	}
	if preds := p.Predecessors(target); len(preds) != 1 {
		t.Fatalf("predecessor count after retarget = %d, want 1", len(preds))
	}
}

func TestAddBranchShapeAndFrequencies(t *testing.T) {
	p := ir.NewProcedure()
	entry := p.AddBlock(1)
	taken := p.AddBlock(1)
	notTaken := p.AddBlock(1)

	b := ir.NewBuilder(p, entry)
	cond := b.AddIntConstant(ir.Int32, 1)
	b.AddBranch(cond, taken, ir.FrequentBlock{Block: notTaken, Freq: ir.FrequencyRare})

	block := p.Block(entry)
	if got := block.Taken(); got.Block != taken || got.Freq != ir.FrequencyNormal {
		t.Fatalf("taken = (block%d, %s), want (block%d, Normal)", got.Block, got.Freq, taken)
	}
	if got := block.NotTaken(); got.Block != notTaken || got.Freq != ir.FrequencyRare {
		t.Fatalf("notTaken = (block%d, %s), want (block%d, Rare)", got.Block, got.Freq, notTaken)
	}
	for _, target := range []ir.BlockID{taken, notTaken} {
		if preds := p.Predecessors(target); len(preds) != 1 || preds[0] != entry {
			t.Fatalf("predecessors of block%d = %v, want [block%d]", target, preds, entry)
		}
	}
}

// buildDiamond builds entry -> branch(B, C); B -> jump(D); C -> jump(D);
// D -> return.
func buildDiamond(t *testing.T) (*ir.Procedure, [4]ir.BlockID) {
	t.Helper()
	p := ir.NewProcedure()
	entry := p.AddBlock(1)
	bB := p.AddBlock(1)
	bC := p.AddBlock(1)
	bD := p.AddBlock(1)

	b := ir.NewBuilder(p, entry)
	cond := b.AddArgument(ir.Int32, 0)
	b.AddBranch(cond, bB, ir.FrequentBlock{Block: bC, Freq: ir.FrequencyNormal})

	ir.NewBuilder(p, bB).AddJump(bD)
	ir.NewBuilder(p, bC).AddJump(bD)

	d := ir.NewBuilder(p, bD)
	ret := d.AddIntConstant(ir.Int32, 0)
	d.AddReturn(ret)

	return p, [4]ir.BlockID{entry, bB, bC, bD}
}

func TestDiamondEdgeDuality(t *testing.T) {
	p, blocks := buildDiamond(t)

	if err := ir.Validate(p); err != nil {
		t.Fatalf("diamond procedure fails validation: %v", err)
	}

	// Spot-check the duality in both directions for every pair.
	for _, from := range blocks {
		for _, succ := range p.Successors(from) {
			found := false
			for _, pred := range p.Predecessors(succ.Block) {
				if pred == from {
					found = true
				}
			}
			if !found {
				t.Errorf("block%d -> block%d has no reciprocal predecessor entry", from, succ.Block)
			}
		}
	}
	if preds := p.Predecessors(blocks[3]); len(preds) != 2 {
		t.Fatalf("join block has %d predecessors, want 2", len(preds))
	}
}

func TestDiamondTraversalOrders(t *testing.T) {
	p, blocks := buildDiamond(t)
	entry, bB, bC, bD := blocks[0], blocks[1], blocks[2], blocks[3]

	pre := ir.BlocksInPreOrder(entry, p)
	post := ir.BlocksInPostOrder(entry, p)

	for _, order := range [][]ir.BlockID{pre, post} {
		if len(order) != 4 {
			t.Fatalf("traversal visited %d blocks, want 4: %v", len(order), order)
		}
		seen := map[ir.BlockID]int{}
		for _, id := range order {
			seen[id]++
		}
		for _, id := range blocks {
			if seen[id] != 1 {
				t.Fatalf("block%d visited %d times: %v", id, seen[id], order)
			}
		}
	}

	if pre[0] != entry {
		t.Errorf("pre-order starts at block%d, want the entry", pre[0])
	}
	pos := func(order []ir.BlockID, id ir.BlockID) int {
		for i, b := range order {
			if b == id {
				return i
			}
		}
		return -1
	}
	if pos(post, bD) > pos(post, bB) || pos(post, bD) > pos(post, bC) {
		t.Errorf("post-order must visit the join block before both arms: %v", post)
	}
	if post[len(post)-1] != entry {
		t.Errorf("post-order ends at block%d, want the entry", post[len(post)-1])
	}
}

func TestDiamondDominatorsAndCaching(t *testing.T) {
	p, blocks := buildDiamond(t)
	entry, bB, bD := blocks[0], blocks[1], blocks[3]

	doms := p.DominatorsOrCompute()
	if !doms.Dominates(int(entry), int(bD)) {
		t.Errorf("entry should dominate the join block")
	}
	if doms.Dominates(int(bB), int(bD)) {
		t.Errorf("one diamond arm must not dominate the join block")
	}
	if again := p.DominatorsOrCompute(); again != doms {
		t.Errorf("DominatorsOrCompute should return the memoized analysis")
	}

	loops := p.NaturalLoopsOrCompute()
	if loops.NumLoops() != 0 {
		t.Errorf("diamond has %d natural loops, want 0", loops.NumLoops())
	}

	p.InvalidateCFG()
	if fresh := p.DominatorsOrCompute(); fresh == doms {
		t.Errorf("InvalidateCFG should drop the cached analysis")
	}
}

func TestLoopRecognitionThroughProcedure(t *testing.T) {
	// entry -> header; header -> branch(body, exit); body -> jump(header).
	p := ir.NewProcedure()
	entry := p.AddBlock(1)
	header := p.AddBlock(1)
	body := p.AddBlock(1)
	exit := p.AddBlock(1)

	ir.NewBuilder(p, entry).AddJump(header)

	hb := ir.NewBuilder(p, header)
	cond := hb.AddArgument(ir.Int32, 0)
	hb.AddBranch(cond, body, ir.FrequentBlock{Block: exit, Freq: ir.FrequencyNormal})

	ir.NewBuilder(p, body).AddJump(header)

	eb := ir.NewBuilder(p, exit)
	ret := eb.AddIntConstant(ir.Int32, 0)
	eb.AddReturn(ret)

	loops := p.NaturalLoopsOrCompute()
	if loops.NumLoops() != 1 {
		t.Fatalf("NumLoops = %d, want 1", loops.NumLoops())
	}
	l := loops.Loop(0)
	if l.Header != int(header) {
		t.Fatalf("loop header = %d, want block%d", l.Header, header)
	}
	if !l.Contains(int(body)) || l.Contains(int(exit)) {
		t.Fatalf("loop body = %v, want {header, body}", l.Body)
	}
}
