package core

import (
	"fmt"
	"math"
)

// Validate checks the preconditions every engine relies on.
//
// Steps:
//  1. g must be non-nil and hold at least one node.
//  2. Every node ID is non-empty and unique.
//  3. Every edge names non-empty endpoints.
//  4. Every weight is a finite, non-negative number.
//  5. Twice the sum of all weights is finite, so no tree cost or
//     path relaxation can overflow to +Inf.
//
// Edges that reference unknown node IDs pass validation; engines skip them.
// All failures wrap ErrInvalidGraph.
//
// Complexity: O(V + E).
func Validate(g *Graph) error {
	// 1. Shape of the graph itself.
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidGraph)
	}
	if len(g.Nodes) == 0 {
		return fmt.Errorf("%w: graph must contain at least one node", ErrInvalidGraph)
	}

	// 2. Node identities.
	seen := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node %d has an empty id", ErrInvalidGraph, i)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: duplicate node id %q", ErrInvalidGraph, n.ID)
		}
		seen[n.ID] = struct{}{}
	}

	// 3-4. Edge fields and weights.
	var total float64
	for i, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge %d must have both from and to", ErrInvalidGraph, i)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge %s has a non-numeric weight", ErrInvalidGraph, e.Key())
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s has negative weight %g", ErrInvalidGraph, e.Key(), e.Weight)
		}
		total += e.Weight
	}

	// 5. Headroom for sums.
	if total > math.MaxFloat64/2 {
		return fmt.Errorf("%w: total edge weight %g is too large", ErrInvalidGraph, total)
	}

	return nil
}
