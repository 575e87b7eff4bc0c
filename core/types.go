// Package core declares Node, Edge, Graph and the sentinel errors shared by
// the trace engines.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph indicates a structurally malformed graph: missing node or
// edge lists, an empty node set, edges missing required fields, or a negative
// weight. It is fatal; no partial result is produced.
var ErrInvalidGraph = errors.New("core: invalid graph")

// Node is a vertex of the input graph.
//
// ID uniquely identifies the node. Label, X and Y are presentation data and are
// ignored by every engine.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string `json:"id"`

	// Label is an optional display name.
	Label string `json:"label,omitempty"`

	// X and Y are optional display coordinates.
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
}

// Edge represents a weighted connection between two nodes.
//
// An empty ID is defaulted to "{from}-{to}" by Key. Directed edges are one-way;
// the default (false) is undirected.
type Edge struct {
	// ID optionally identifies this edge. See Key.
	ID string `json:"id,omitempty"`

	// From is the source node ID.
	From string `json:"from"`

	// To is the destination node ID.
	To string `json:"to"`

	// Weight is the non-negative cost of the edge.
	Weight float64 `json:"weight"`

	// Directed marks the edge as one-way.
	Directed bool `json:"directed,omitempty"`
}

// Key returns the edge identity used in traces: ID when set, "{from}-{to}" otherwise.
// Complexity: O(1).
func (e Edge) Key() string {
	if e.ID != "" {
		return e.ID
	}

	return fmt.Sprintf("%s-%s", e.From, e.To)
}

// Graph is the caller-owned input of every engine.
//
// Nodes and Edges keep caller order; engines rely on it for deterministic
// tie-breaking and never modify either slice.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeIDs returns node IDs in input order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}

	return ids
}

// NodeIndex maps each node ID to its dense position 0..n-1 in input order.
// If an ID is repeated, the first occurrence wins.
// Complexity: O(V).
func (g *Graph) NodeIndex() map[string]int {
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, seen := index[n.ID]; !seen {
			index[n.ID] = i
		}
	}

	return index
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(V).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}

	return false
}

// UsableEdges returns the edges whose endpoints both name existing nodes,
// preserving input order. Edges referencing unknown nodes are dropped silently.
// Complexity: O(V + E).
func (g *Graph) UsableEdges() []Edge {
	index := g.NodeIndex()
	out := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if _, ok := index[e.From]; !ok {
			continue
		}
		if _, ok := index[e.To]; !ok {
			continue
		}
		out = append(out, e)
	}

	return out
}
