package ir

// BlocksInPreOrder returns the blocks reachable from root in DFS
// pre-order: a block appears before any block it is first discovered
// through.
func BlocksInPreOrder(root BlockID, p *Procedure) []BlockID {
	result := make([]BlockID, 0, p.NumBlocks())
	seen := make([]bool, p.NumBlocks())

	worklist := []BlockID{root}
	seen[root] = true
	for len(worklist) > 0 {
		block := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		result = append(result, block)

		for _, succ := range p.Block(block).Successors() {
			if !seen[succ.Block] {
				seen[succ.Block] = true
				worklist = append(worklist, succ.Block)
			}
		}
	}
	return result
}

// BlocksInPostOrder returns the blocks reachable from root in DFS
// post-order: every block appears after all of its unvisited
// successors.
func BlocksInPostOrder(root BlockID, p *Procedure) []BlockID {
	result := make([]BlockID, 0, p.NumBlocks())
	seen := make([]bool, p.NumBlocks())

	type frame struct {
		block BlockID
		next  int // successor edges already explored
	}
	stack := []frame{{block: root}}
	seen[root] = true
	for len(stack) > 0 {
		tos := len(stack) - 1
		f := stack[tos]
		succs := p.Block(f.block).Successors()
		if f.next < len(succs) {
			stack[tos].next++
			succ := succs[f.next].Block
			if !seen[succ] {
				seen[succ] = true
				stack = append(stack, frame{block: succ})
			}
			continue
		}
		stack = stack[:tos]
		result = append(result, f.block)
	}
	return result
}
