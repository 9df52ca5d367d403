// Package cfg provides control-flow analyses over an abstract graph.
//
// The analyses only need node identity, edge queries, a root and a node
// count, so they are written against the Graph interface and stay
// independent of the IR that owns the blocks.
package cfg

// Graph is the minimal capability a control-flow graph must expose.
// Nodes are dense indexes in [0, NumNodes).
type Graph interface {
	NumNodes() int
	Root() int
	Predecessors(node int) []int
	Successors(node int) []int
}

type nodeAndIndex struct {
	node  int
	index int // number of successor edges already explored
}

// postorder returns a DFS postordering of the nodes reachable from the
// root, and a per-node postorder number (-1 for unreachable nodes).
func postorder(g Graph) (order []int, ponum []int32) {
	n := g.NumNodes()
	ponum = make([]int32, n)
	for i := range ponum {
		ponum[i] = -1
	}
	if n == 0 {
		return nil, ponum
	}

	seen := make([]bool, n)
	order = make([]int, 0, n)

	s := make([]nodeAndIndex, 0, 32)
	s = append(s, nodeAndIndex{node: g.Root()})
	seen[g.Root()] = true
	for len(s) > 0 {
		tos := len(s) - 1
		x := s[tos]
		succs := g.Successors(x.node)
		if i := x.index; i < len(succs) {
			s[tos].index++
			next := succs[i]
			if !seen[next] {
				seen[next] = true
				s = append(s, nodeAndIndex{node: next})
			}
			continue
		}
		s = s[:tos]
		ponum[x.node] = int32(len(order))
		order = append(order, x.node)
	}
	return order, ponum
}
