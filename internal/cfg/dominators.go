package cfg

// Dominators holds the immediate-dominator tree of a graph, computed
// with the iterative algorithm of Cooper, Harvey and Kennedy over a
// postorder numbering.
type Dominators struct {
	idom  []int32 // node -> immediate dominator, -1 for root/unreachable
	ponum []int32 // node -> postorder number, -1 for unreachable
	root  int
}

// ComputeDominators builds the dominator tree for g.
func ComputeDominators(g Graph) *Dominators {
	order, ponum := postorder(g)
	n := g.NumNodes()

	idom := make([]int32, n)
	for i := range idom {
		idom[i] = -1
	}

	root := g.Root()
	if n == 0 {
		return &Dominators{idom: idom, ponum: ponum, root: root}
	}
	idom[root] = int32(root)

	// Iterate to a fixed point in reverse postorder.
	for changed := true; changed; {
		changed = false
		for i := len(order) - 1; i >= 0; i-- {
			b := order[i]
			if b == root {
				continue
			}
			newIdom := int32(-1)
			for _, p := range g.Predecessors(b) {
				if ponum[p] < 0 || idom[p] < 0 {
					continue // unreachable or not yet processed
				}
				if newIdom < 0 {
					newIdom = int32(p)
					continue
				}
				newIdom = intersect(int(newIdom), p, ponum, idom)
			}
			if newIdom >= 0 && idom[b] != newIdom {
				idom[b] = newIdom
				changed = true
			}
		}
	}

	// The root self-loop was only needed during iteration.
	idom[root] = -1

	return &Dominators{idom: idom, ponum: ponum, root: root}
}

// intersect finds the closest common dominator of b and c by walking up
// the partially built dominator tree, guided by postorder numbers.
func intersect(b, c int, ponum []int32, idom []int32) int32 {
	for b != c {
		for ponum[b] < ponum[c] {
			b = int(idom[b])
		}
		for ponum[c] < ponum[b] {
			c = int(idom[c])
		}
	}
	return int32(b)
}

// Idom returns the immediate dominator of node, or -1 for the root and
// for unreachable nodes.
func (d *Dominators) Idom(node int) int {
	return int(d.idom[node])
}

// IsReachable reports whether node was reachable from the root when the
// tree was computed.
func (d *Dominators) IsReachable(node int) bool {
	return d.ponum[node] >= 0
}

// Dominates reports whether a dominates b. A node dominates itself.
func (d *Dominators) Dominates(a, b int) bool {
	if !d.IsReachable(a) || !d.IsReachable(b) {
		return false
	}
	for {
		if a == b {
			return true
		}
		next := d.idom[b]
		if next < 0 {
			return false
		}
		b = int(next)
	}
}

// StrictlyDominates reports whether a dominates b and a != b.
func (d *Dominators) StrictlyDominates(a, b int) bool {
	return a != b && d.Dominates(a, b)
}
