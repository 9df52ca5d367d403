package cfg

import "sort"

// Loop is a natural loop: a header plus every node that can reach a
// back edge into the header without leaving the loop.
type Loop struct {
	Header int
	Body   []int // sorted by node index, includes Header
}

// Contains reports whether node belongs to the loop body.
func (l *Loop) Contains(node int) bool {
	i := sort.SearchInts(l.Body, node)
	return i < len(l.Body) && l.Body[i] == node
}

// NaturalLoops holds every natural loop of a graph. Loops sharing a
// header are merged, as usual for back-edge based loop recognition.
type NaturalLoops struct {
	loops     []Loop
	innermost []int32 // node -> index into loops, -1 if in no loop
}

// ComputeNaturalLoops finds natural loops via dominance-based back-edge
// detection: an edge pred->head is a back edge iff head dominates pred.
func ComputeNaturalLoops(g Graph, doms *Dominators) *NaturalLoops {
	n := g.NumNodes()

	// Back-edge sources grouped by header.
	sources := make(map[int][]int)
	var headers []int
	for pred := 0; pred < n; pred++ {
		if !doms.IsReachable(pred) {
			continue
		}
		for _, head := range g.Successors(pred) {
			if doms.Dominates(head, pred) {
				if _, ok := sources[head]; !ok {
					headers = append(headers, head)
				}
				sources[head] = append(sources[head], pred)
			}
		}
	}
	sort.Ints(headers)

	ln := &NaturalLoops{innermost: make([]int32, n)}
	for i := range ln.innermost {
		ln.innermost[i] = -1
	}

	for _, head := range headers {
		ln.loops = append(ln.loops, Loop{Header: head, Body: loopBody(g, head, sources[head])})
	}

	// The innermost loop of a node is the smallest loop containing it.
	for i := range ln.loops {
		l := &ln.loops[i]
		for _, node := range l.Body {
			cur := ln.innermost[node]
			if cur < 0 || len(l.Body) < len(ln.loops[cur].Body) {
				ln.innermost[node] = int32(i)
			}
		}
	}

	return ln
}

// loopBody walks predecessors backwards from the back-edge sources
// until the header, collecting the loop membership.
func loopBody(g Graph, head int, sources []int) []int {
	inLoop := map[int]bool{head: true}
	work := make([]int, 0, len(sources))
	for _, s := range sources {
		if !inLoop[s] {
			inLoop[s] = true
			work = append(work, s)
		}
	}
	for len(work) > 0 {
		node := work[len(work)-1]
		work = work[:len(work)-1]
		for _, p := range g.Predecessors(node) {
			if !inLoop[p] {
				inLoop[p] = true
				work = append(work, p)
			}
		}
	}

	body := make([]int, 0, len(inLoop))
	for node := range inLoop {
		body = append(body, node)
	}
	sort.Ints(body)
	return body
}

// NumLoops reports the number of distinct natural loops.
func (ln *NaturalLoops) NumLoops() int {
	return len(ln.loops)
}

// Loop returns the i-th loop, ordered by header node index.
func (ln *NaturalLoops) Loop(i int) *Loop {
	return &ln.loops[i]
}

// IsLoopHeader reports whether node heads a natural loop.
func (ln *NaturalLoops) IsLoopHeader(node int) bool {
	for i := range ln.loops {
		if ln.loops[i].Header == node {
			return true
		}
	}
	return false
}

// InnermostLoopOf returns the smallest loop containing node, or nil.
func (ln *NaturalLoops) InnermostLoopOf(node int) *Loop {
	i := ln.innermost[node]
	if i < 0 {
		return nil
	}
	return &ln.loops[i]
}

// LoopDepth reports how many loops contain node (0 for loop-free code).
func (ln *NaturalLoops) LoopDepth(node int) int {
	depth := 0
	for i := range ln.loops {
		if ln.loops[i].Contains(node) {
			depth++
		}
	}
	return depth
}
