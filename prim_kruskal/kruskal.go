// Package prim_kruskal provides a step-traced implementation of Kruskal's
// Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dsu"
	"github.com/katalvlaran/lvtrace/trace"
)

// Kruskal computes a minimum spanning tree (or forest) of g and records every
// decision as a KruskalStep.
//
// Error Conditions:
//   - ErrInvalidGraph : if core.Validate(g) fails.
//
// Steps:
//  1. Validate g.
//  2. Drop edges with unknown endpoints; stable-sort the rest ascending by weight.
//  3. Map node IDs to dense indices and build a dsu.UnionFind over them.
//  4. Emit initialize: every sorted edge pending, every node its own component.
//  5. For each sorted edge: reject if its endpoints are connected, otherwise union,
//     accept and add its weight. Emit one step per edge.
//  6. As soon as |V|−1 edges are accepted emit complete and stop.
//
// A disconnected graph never reaches step 6; the trace ends after the last edge and
// the result carries the partial forest with Complete == false.
//
// Complexity: O(E log E + E·α(V)) plus O(E + V) copying per emitted step.
func Kruskal(g *core.Graph) (*KruskalResult, error) {
	// 1. Validate whole-graph shape.
	if err := core.Validate(g); err != nil {
		return nil, err
	}

	// 2. Usable edges in stable weight order; ties keep input order.
	usable := g.UsableEdges()
	sorted := make([]TraceEdge, len(usable))
	for i, e := range usable {
		sorted[i] = toTraceEdge(e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Dense indices and disjoint sets.
	r := &kruskalRun{
		ids:    g.NodeIDs(),
		index:  g.NodeIndex(),
		sorted: sorted,
		status: make([]EdgeStatus, len(sorted)),
	}
	r.uf = dsu.New(len(r.ids))
	for i := range r.status {
		r.status[i] = StatusPending
	}

	// 4-6. Examine edges.
	r.run()

	return &KruskalResult{
		Steps:     r.rec.Steps(),
		MSTEdges:  cloneEdges(r.mst),
		TotalCost: r.total,
		EdgeCount: len(r.mst),
		Complete:  len(r.mst) == len(r.ids)-1,
	}, nil
}

// kruskalRun holds the mutable state of a single Kruskal execution.
type kruskalRun struct {
	ids    []string       // node IDs by dense index
	index  map[string]int // node ID → dense index
	sorted []TraceEdge    // usable edges, ascending weight
	status []EdgeStatus   // status per sorted position
	uf     *dsu.UnionFind

	mst   []TraceEdge
	total float64

	rec trace.Recorder[KruskalStep]
}

func (r *kruskalRun) run() {
	r.emit(trace.ActionInitialize, -1, fmt.Sprintf(
		"Sorted %d edge(s) by weight. Each of the %d node(s) starts in its own component.",
		len(r.sorted), len(r.ids)))

	target := len(r.ids) - 1
	for i, e := range r.sorted {
		u, v := r.index[e.From], r.index[e.To]

		if r.uf.Connected(u, v) {
			r.status[i] = StatusRejected
			r.emit(ActionReject, i, fmt.Sprintf(
				"Reject edge %s-%s (weight %s): %s and %s are already connected, so it would form a cycle.",
				e.From, e.To, formatWeight(e.Weight), e.From, e.To))
			continue
		}

		// Describe the two components before they merge.
		left, right := r.componentOf(u), r.componentOf(v)
		r.uf.Union(u, v)
		r.status[i] = StatusAccepted
		r.mst = append(r.mst, e)
		r.total += e.Weight
		r.emit(ActionAccept, i, fmt.Sprintf(
			"Accept edge %s-%s (weight %s): joins %s and %s. Total cost is now %s.",
			e.From, e.To, formatWeight(e.Weight), formatSet(left), formatSet(right), formatWeight(r.total)))

		if len(r.mst) == target {
			r.emit(trace.ActionComplete, -1, fmt.Sprintf(
				"Minimum spanning tree complete: %d edge(s), total cost %s.",
				len(r.mst), formatWeight(r.total)))

			return
		}
	}
}

// componentOf returns the member IDs of x's component in input order.
func (r *kruskalRun) componentOf(x int) []string {
	root := r.uf.Find(x)
	var members []string
	for i, id := range r.ids {
		if r.uf.Find(i) == root {
			members = append(members, id)
		}
	}

	return members
}

// emit appends a step whose collections are all fresh copies of the live state.
func (r *kruskalRun) emit(action trace.Action, current int, desc string) {
	step := KruskalStep{
		Step:         r.rec.Next(),
		Action:       action,
		Description:  desc,
		SortedEdges:  annotate(r.sorted, r.status),
		CurrentIndex: current,
		MSTEdges:     cloneEdges(r.mst),
		TotalCost:    r.total,
		UnionFind:    partition(r.uf, r.ids),
	}
	if current >= 0 {
		step.CurrentEdge = edgeRef(r.sorted[current])
	}
	r.rec.Append(step)
}
