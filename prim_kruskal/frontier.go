package prim_kruskal

import "sort"

// edgeFrontier is Prim's priority queue: a plain slice kept ascending by weight
// with a stable sort, so equal weights stay in discovery order. A binary heap
// would not preserve that order.
type edgeFrontier struct {
	items []TraceEdge
}

// Len returns the number of queued edges.
func (f *edgeFrontier) Len() int { return len(f.items) }

// push appends e at the back; call sort before the next pop.
func (f *edgeFrontier) push(e TraceEdge) { f.items = append(f.items, e) }

// pop removes and returns the front (minimum-weight) edge.
// The frontier must be non-empty and sorted.
func (f *edgeFrontier) pop() TraceEdge {
	e := f.items[0]
	f.items = f.items[1:]

	return e
}

// sort restores ascending weight order, ties by current position.
func (f *edgeFrontier) sort() {
	sort.SliceStable(f.items, func(i, j int) bool {
		return f.items[i].Weight < f.items[j].Weight
	})
}

// dropReached removes every edge whose far endpoint is in visited.
func (f *edgeFrontier) dropReached(visited map[string]bool) {
	kept := f.items[:0:0]
	for _, e := range f.items {
		if !visited[e.To] {
			kept = append(kept, e)
		}
	}
	f.items = kept
}

// snapshot returns a copy of the queue in its current order.
func (f *edgeFrontier) snapshot() []TraceEdge {
	return cloneEdges(f.items)
}
