// Package dijkstra implements Dijkstra's shortest-path algorithm with a full
// step trace.
package dijkstra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// Dijkstra computes shortest distances from Options.Source to every node of g,
// or until Options.Target is finalized, and records the search as Steps.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrMissingSource).
//  2. g must pass core.Validate (core.ErrInvalidGraph).
//  3. g must contain Source (ErrUnknownSource).
//
// Steps emitted:
//
//   - initialize: source at 0, every other node at Infinity, queue = [source].
//   - process_node: a node popped from the queue and finalized.
//   - update_distances: all neighbours improved while relaxing that node, if any.
//   - complete: the target path, a no-path notice, or a general summary.
//
// Complexity:
//
//   - Time:  O(V · E log E)
//   - Space: O(V + E), plus the per-step copies.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrMissingSource
	}

	// 3) Validate graph shape
	if err := core.Validate(g); err != nil {
		return nil, err
	}

	// 4) Validate Source exists in the graph
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}

	// 5) Run.
	r := &runner{
		ids:     g.NodeIDs(),
		adj:     core.BuildAdjacency(g),
		options: cfg,
		dist:    make(map[string]Distance, len(g.Nodes)),
		prev:    make(map[string]string, len(g.Nodes)),
		visited: make(map[string]bool, len(g.Nodes)),
	}
	r.init()
	r.process()

	return r.finish(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	ids     []string            // node IDs in input order
	adj     core.Adjacency      // read-only neighbour lists
	options Options             // Source and Target
	dist    map[string]Distance // node ID → best-known distance
	prev    map[string]string   // node ID → predecessor, "" for none
	visited map[string]bool     // finalized nodes
	order   []string            // finalized nodes in processing order
	pq      []QueueEntry        // frontier, sorted before each pop

	rec trace.Recorder[Step]
}

// init sets every distance to Infinity except the source and queues the source.
func (r *runner) init() {
	for _, id := range r.ids {
		r.dist[id] = Infinity
		r.prev[id] = ""
	}
	r.dist[r.options.Source] = Finite(0)
	r.pq = append(r.pq, QueueEntry{Node: r.options.Source, Distance: Finite(0)})

	r.emit(trace.ActionInitialize, "", nil, fmt.Sprintf(
		"Set the distance of %s to 0 and every other node to ∞.", r.options.Source))
}

// process is the main loop. It pops the closest queued node, finalizes it and
// relaxes its outgoing arcs, until the queue is empty or the target is finalized.
func (r *runner) process() {
	for len(r.pq) > 0 {
		// 1) Pop the smallest distance; equal distances keep queue order.
		sort.SliceStable(r.pq, func(i, j int) bool {
			return r.pq[i].Distance.Less(r.pq[j].Distance)
		})
		item := r.pq[0]
		r.pq = r.pq[1:]
		u := item.Node

		// 2) Stale entry, skipped without a step.
		if r.visited[u] {
			continue
		}

		// 3) Finalize u.
		r.visited[u] = true
		r.order = append(r.order, u)
		r.emit(ActionProcessNode, u, nil, fmt.Sprintf(
			"Process %s at distance %s; its shortest distance is now final.", u, r.dist[u]))

		// 4) Early exit once the target is settled.
		if r.options.Target != "" && u == r.options.Target {
			break
		}

		// 5) Relax.
		if updates := r.relax(u); len(updates) > 0 {
			r.emit(ActionUpdateDistances, u, updates, describeUpdates(u, updates))
		}
	}
}

// relax improves every unvisited neighbour of u reachable through a strictly
// shorter path and returns the improvements in arc order.
func (r *runner) relax(u string) []Update {
	var updates []Update
	for _, a := range r.adj.Neighbors(u) {
		v := a.To
		if r.visited[v] {
			continue
		}

		candidate := r.dist[u].Add(a.Weight)
		if !candidate.Less(r.dist[v]) {
			continue
		}

		updates = append(updates, Update{
			Node:        v,
			From:        u,
			EdgeID:      a.EdgeID,
			OldDistance: r.dist[v],
			NewDistance: candidate,
		})
		r.dist[v] = candidate
		r.prev[v] = u
		r.enqueue(v, candidate)
	}

	return updates
}

// enqueue replaces any queued entry for node with a new one at the back.
func (r *runner) enqueue(node string, d Distance) {
	kept := r.pq[:0:0]
	for _, e := range r.pq {
		if e.Node != node {
			kept = append(kept, e)
		}
	}
	r.pq = append(kept, QueueEntry{Node: node, Distance: d})
}

// finish rebuilds shortest paths, emits the complete step and assembles the Result.
func (r *runner) finish() *Result {
	src, target := r.options.Source, r.options.Target

	paths := make(map[string]Path, len(r.ids))
	reachable := 0
	for _, id := range r.ids {
		d := r.dist[id]
		if d.IsInf() {
			continue
		}
		reachable++
		nodes := r.reconstruct(id)
		if nodes == nil {
			nodes = []string{}
		}
		paths[id] = Path{Nodes: nodes, Distance: d}
	}

	res := &Result{
		Source:        src,
		Target:        target,
		ShortestPaths: paths,
		PathExists:    true,
	}

	var desc string
	switch {
	case target == "":
		desc = fmt.Sprintf("Finished: %d of %d node(s) are reachable from %s.", reachable, len(r.ids), src)
	case r.dist[target].IsInf():
		// An unknown target is absent from dist and reads as Infinity.
		res.PathExists = false
		desc = fmt.Sprintf("No path exists from %s to %s.", src, target)
	default:
		p := paths[target]
		res.PathExists = len(p.Nodes) > 0
		res.Path = cloneStrings(p.Nodes)
		desc = fmt.Sprintf("Shortest path from %s to %s: %s (distance %s).",
			src, target, strings.Join(p.Nodes, " → "), p.Distance)
	}
	r.emit(trace.ActionComplete, "", nil, desc)

	res.Steps = r.rec.Steps()
	res.Distances = cloneDistances(r.dist)
	res.Previous = cloneStringMap(r.prev)
	res.Visited = cloneStrings(r.order)

	return res
}

// emit appends a step that owns copies of the live distance, predecessor,
// visited and queue state.
func (r *runner) emit(action trace.Action, current string, updates []Update, desc string) {
	step := Step{
		Step:          r.rec.Next(),
		Action:        action,
		Description:   desc,
		CurrentNode:   current,
		Distances:     cloneDistances(r.dist),
		Previous:      cloneStringMap(r.prev),
		Visited:       cloneStrings(r.order),
		PriorityQueue: cloneQueue(r.pq),
	}
	if action == ActionUpdateDistances {
		step.Updates = cloneUpdates(updates)
	}
	r.rec.Append(step)
}

// describeUpdates narrates one relaxation pass, e.g.
// "Relaxed edges of A: B ∞ → 4, D ∞ → 2.".
func describeUpdates(u string, updates []Update) string {
	parts := make([]string, len(updates))
	for i, up := range updates {
		parts[i] = fmt.Sprintf("%s %s → %s", up.Node, up.OldDistance, up.NewDistance)
	}

	return fmt.Sprintf("Relaxed edges of %s: %s.", u, strings.Join(parts, ", "))
}
