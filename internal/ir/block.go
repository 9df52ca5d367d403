package ir

import "fmt"

// BasicBlock is an ordered list of values (the last one is the
// terminal), a predecessor list and a frequency-tagged successor list.
//
// The successor list must mirror the control-transfer semantics of the
// terminal at all times. Only the Builder installs terminal edges; a
// pass that mutates successors directly must restore the
// predecessor/successor duality itself before handing the procedure on.
type BasicBlock struct {
	index     BlockID
	values    []ValueID
	preds     []BlockID
	succs     []FrequentBlock
	frequency float64
}

func newBasicBlock(index BlockID, frequency float64) *BasicBlock {
	return &BasicBlock{index: index, frequency: frequency}
}

// Index returns the block's position in procedure storage order.
func (b *BasicBlock) Index() BlockID {
	return b.index
}

// Frequency returns the block's execution-frequency estimate.
func (b *BasicBlock) Frequency() float64 {
	return b.frequency
}

// Values returns the block's computations in program order. The slice
// is the block's own storage; callers must not grow it.
func (b *BasicBlock) Values() []ValueID {
	return b.values
}

// NumValues reports the number of values in the block.
func (b *BasicBlock) NumValues() int {
	return len(b.values)
}

// ValueAt returns the i-th value in program order.
func (b *BasicBlock) ValueAt(i int) ValueID {
	return b.values[i]
}

// Last returns the terminal value, or NoValueID for an empty block.
func (b *BasicBlock) Last() ValueID {
	if len(b.values) == 0 {
		return NoValueID
	}
	return b.values[len(b.values)-1]
}

// Append pushes a value to the end of the block.
func (b *BasicBlock) Append(value ValueID) {
	b.values = append(b.values, value)
}

// AppendNonTerminal inserts a value immediately before the current
// terminal, for housekeeping computations injected after the block was
// sealed. The block must already have a terminal.
func (b *BasicBlock) AppendNonTerminal(value ValueID) {
	if len(b.values) == 0 {
		panic(fmt.Errorf("ir: AppendNonTerminal on empty block%d", b.index))
	}
	last := b.values[len(b.values)-1]
	b.values = append(b.values, last)
	b.values[len(b.values)-2] = value
}

// Taken returns the branch-taken edge. The caller must know from the
// terminal's opcode that the block has the two-successor shape.
func (b *BasicBlock) Taken() FrequentBlock {
	if len(b.succs) < 2 {
		panic(fmt.Errorf("ir: Taken on block%d with %d successors", b.index, len(b.succs)))
	}
	return b.succs[0]
}

// TakenPtr returns the branch-taken edge for in-place mutation.
func (b *BasicBlock) TakenPtr() *FrequentBlock {
	if len(b.succs) < 2 {
		panic(fmt.Errorf("ir: Taken on block%d with %d successors", b.index, len(b.succs)))
	}
	return &b.succs[0]
}

// NotTaken returns the branch-not-taken edge.
func (b *BasicBlock) NotTaken() FrequentBlock {
	if len(b.succs) < 2 {
		panic(fmt.Errorf("ir: NotTaken on block%d with %d successors", b.index, len(b.succs)))
	}
	return b.succs[1]
}

// NotTakenPtr returns the branch-not-taken edge for in-place mutation.
func (b *BasicBlock) NotTakenPtr() *FrequentBlock {
	if len(b.succs) < 2 {
		panic(fmt.Errorf("ir: NotTaken on block%d with %d successors", b.index, len(b.succs)))
	}
	return &b.succs[1]
}

// Fallthrough returns the last successor, which is the fallthrough
// edge for every terminal shape.
func (b *BasicBlock) Fallthrough() FrequentBlock {
	if len(b.succs) == 0 {
		panic(fmt.Errorf("ir: Fallthrough on block%d with no successors", b.index))
	}
	return b.succs[len(b.succs)-1]
}

// Successors returns the successor edge list.
func (b *BasicBlock) Successors() []FrequentBlock {
	return b.succs
}

// Predecessors returns the predecessor list. Unordered, no duplicates.
func (b *BasicBlock) Predecessors() []BlockID {
	return b.preds
}

// AppendSuccessor pushes one successor edge.
func (b *BasicBlock) AppendSuccessor(target FrequentBlock) {
	b.succs = append(b.succs, target)
}

// SetSuccessors atomically replaces the successor list with a single
// edge, for the one-successor terminal shape.
func (b *BasicBlock) SetSuccessors(target FrequentBlock) {
	b.succs = b.succs[:0]
	b.succs = append(b.succs, target)
}

// SetSuccessors2 atomically replaces the successor list with the
// two-successor shape: taken first, not-taken second.
func (b *BasicBlock) SetSuccessors2(taken, notTaken FrequentBlock) {
	b.succs = b.succs[:0]
	b.succs = append(b.succs, taken, notTaken)
}

// ReplaceSuccessor retargets every edge pointing at from to point at
// to, reporting whether any edge changed.
func (b *BasicBlock) ReplaceSuccessor(from, to BlockID) bool {
	changed := false
	for i := range b.succs {
		if b.succs[i].Block == from {
			b.succs[i].Block = to
			changed = true
		}
	}
	return changed
}

// AddPredecessor records pred, reporting whether the list changed.
// Adding an already-present predecessor is a no-op.
func (b *BasicBlock) AddPredecessor(pred BlockID) bool {
	for _, p := range b.preds {
		if p == pred {
			return false
		}
	}
	b.preds = append(b.preds, pred)
	return true
}

// RemovePredecessor removes the first matching entry, reporting
// whether one was found.
func (b *BasicBlock) RemovePredecessor(pred BlockID) bool {
	for i, p := range b.preds {
		if p == pred {
			b.preds = append(b.preds[:i], b.preds[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSuccessor removes the first edge targeting succ, reporting
// whether one was found.
func (b *BasicBlock) RemoveSuccessor(succ BlockID) bool {
	for i := range b.succs {
		if b.succs[i].Block == succ {
			b.succs = append(b.succs[:i], b.succs[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSuccessor2 removes the first edge targeting either block,
// reporting whether one was found.
func (b *BasicBlock) RemoveSuccessor2(succ1, succ2 BlockID) bool {
	for i := range b.succs {
		if b.succs[i].Block == succ1 || b.succs[i].Block == succ2 {
			b.succs = append(b.succs[:i], b.succs[i+1:]...)
			return true
		}
	}
	return false
}

// ReplacePredecessor swaps from for to in the predecessor list,
// reporting whether anything changed. Used by block splitting and
// merging passes.
func (b *BasicBlock) ReplacePredecessor(from, to BlockID) bool {
	changed := b.RemovePredecessor(from)
	if b.AddPredecessor(to) {
		changed = true
	}
	return changed
}
