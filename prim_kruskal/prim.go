// Package prim_kruskal provides a step-traced implementation of Prim's Minimum
// Spanning Tree algorithm.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Prim grows a minimum spanning tree of g outward from start, recording every
// frontier pop as a PrimStep.
//
// Error Conditions:
//   - ErrInvalidGraph : if core.Validate(g) fails.
//   - ErrInvalidStart : if start is non-empty and names no node of g.
//
// Steps:
//  1. Validate g. An empty start selects the first node in input order.
//  2. Build the adjacency list; unknown-endpoint edges are skipped there.
//  3. Mark start visited and seed the frontier with every arc leaving it.
//  4. While the frontier is non-empty and some node is unvisited:
//     a. Pop the lightest edge (u→v).
//     b. If v is visited, emit skip and continue.
//     c. Otherwise accept: visit v, add the edge and its weight, push arcs from v
//     to unvisited nodes, drop frontier edges that now lead into the tree, re-sort.
//  5. Emit complete only if every node was visited.
//
// Complexity: O(E² log E) worst case from the per-acceptance re-sort.
func Prim(g *core.Graph, start string) (*PrimResult, error) {
	// 1. Validate and resolve the start node.
	if err := core.Validate(g); err != nil {
		return nil, err
	}
	if len(g.Nodes) == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", ErrInvalidStart)
	}
	if start == "" {
		start = g.Nodes[0].ID
	} else if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: node %q not found", ErrInvalidStart, start)
	}

	// 2. Neighbour lists.
	r := &primRun{
		adj:     core.BuildAdjacency(g),
		n:       len(g.Nodes),
		start:   start,
		visited: make(map[string]bool, len(g.Nodes)),
	}

	// 3-5. Grow the tree.
	r.run()

	return &PrimResult{
		Steps:        r.rec.Steps(),
		Start:        start,
		MSTEdges:     cloneEdges(r.mst),
		TotalCost:    r.total,
		VisitedNodes: cloneStrings(r.order),
		Complete:     len(r.order) == r.n,
	}, nil
}

// primRun holds the mutable state of a single Prim execution.
type primRun struct {
	adj   core.Adjacency
	n     int
	start string

	visited map[string]bool
	order   []string // visited nodes in insertion order
	pq      edgeFrontier
	mst     []TraceEdge
	total   float64

	rec trace.Recorder[PrimStep]
}

func (r *primRun) run() {
	// 3. Seed.
	r.visit(r.start)
	for _, a := range r.adj.Neighbors(r.start) {
		r.pq.push(TraceEdge{ID: a.EdgeID, From: r.start, To: a.To, Weight: a.Weight})
	}
	r.pq.sort()
	r.emit(trace.ActionInitialize, nil, nil, fmt.Sprintf(
		"Start at %s. The frontier holds the %d edge(s) leaving %s.",
		r.start, r.pq.Len(), r.start))

	// 4. Main loop.
	for r.pq.Len() > 0 && len(r.order) < r.n {
		e := r.pq.pop()

		// 4b. Stale entry: the far end joined the tree after this edge was queued.
		if r.visited[e.To] {
			r.emit(ActionSkip, &e, nil, fmt.Sprintf(
				"Skip edge %s-%s (weight %s): %s is already in the tree.",
				e.From, e.To, formatWeight(e.Weight), e.To))
			continue
		}

		// 4c. Accept and expand from the new node.
		r.visit(e.To)
		r.mst = append(r.mst, e)
		r.total += e.Weight

		var discovered []TraceEdge
		for _, a := range r.adj.Neighbors(e.To) {
			if r.visited[a.To] {
				continue
			}
			ne := TraceEdge{ID: a.EdgeID, From: e.To, To: a.To, Weight: a.Weight}
			r.pq.push(ne)
			discovered = append(discovered, ne)
		}
		r.pq.dropReached(r.visited)
		r.pq.sort()

		r.emit(ActionAccept, &e, discovered, fmt.Sprintf(
			"Add edge %s-%s (weight %s), bringing %s into the tree. %d new frontier edge(s). Total cost is now %s.",
			e.From, e.To, formatWeight(e.Weight), e.To, len(discovered), formatWeight(r.total)))
	}

	// 5. Only a spanning tree gets a terminal step.
	if len(r.order) == r.n {
		r.emit(trace.ActionComplete, nil, nil, fmt.Sprintf(
			"Minimum spanning tree complete: %d edge(s), total cost %s.",
			len(r.mst), formatWeight(r.total)))
	}
}

func (r *primRun) visit(id string) {
	r.visited[id] = true
	r.order = append(r.order, id)
}

// emit appends a step built from copies of the live state. discovered is only
// recorded for accept steps.
func (r *primRun) emit(action trace.Action, current *TraceEdge, discovered []TraceEdge, desc string) {
	step := PrimStep{
		Step:          r.rec.Next(),
		Action:        action,
		Description:   desc,
		VisitedNodes:  cloneStrings(r.order),
		PriorityQueue: r.pq.snapshot(),
		MSTEdges:      cloneEdges(r.mst),
		TotalCost:     r.total,
	}
	if current != nil {
		step.CurrentEdge = edgeRef(*current)
	}
	if action == ActionAccept {
		step.NewEdges = cloneEdges(discovered)
	}
	r.rec.Append(step)
}
