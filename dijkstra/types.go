// Package dijkstra defines the step and result types, options and sentinel
// errors of the traced Dijkstra engine.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/lvtrace/trace"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrMissingSource indicates that no source node ID was provided.
	ErrMissingSource = errors.New("dijkstra: source node ID is empty")

	// ErrUnknownSource indicates that the source ID is not a node of the graph.
	ErrUnknownSource = errors.New("dijkstra: source node not found in graph")
)

// Step actions specific to Dijkstra. See also trace.ActionInitialize and
// trace.ActionComplete.
const (
	// ActionProcessNode records a node being finalized.
	ActionProcessNode trace.Action = "process_node"

	// ActionUpdateDistances records every neighbour improved by one relaxation pass.
	ActionUpdateDistances trace.Action = "update_distances"
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source – starting node ID (must be non-empty and present in the graph).
// Target – optional node ID; when set, the search stops once it is finalized.
type Options struct {
	Source string // The ID of the source node
	Target string // The ID of the target node, or "" for all nodes
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options.
// Must be called to specify the starting node ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget sets the node whose shortest path is requested. The search exits
// early once it is finalized. An empty id means no target.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// DefaultOptions returns Options for the given source and no target.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}

// QueueEntry is one frontier element: a node and its tentative distance.
type QueueEntry struct {
	Node     string   `json:"node"`
	Distance Distance `json:"distance"`
}

// Update describes one successful relaxation.
type Update struct {
	Node        string   `json:"node"`
	From        string   `json:"from"`
	EdgeID      string   `json:"edgeId"`
	OldDistance Distance `json:"oldDistance"`
	NewDistance Distance `json:"newDistance"`
}

// Step is an immutable snapshot taken after one Dijkstra state transition.
//
// CurrentNode is the node being processed (empty for initialize and complete).
// Updates is set on update_distances steps only.
type Step struct {
	Step        int          `json:"step"`
	Action      trace.Action `json:"action"`
	Description string       `json:"description"`

	CurrentNode   string              `json:"currentNode,omitempty"`
	Distances     map[string]Distance `json:"distances"`
	Previous      map[string]string   `json:"previous"`
	Visited       []string            `json:"visited"`
	PriorityQueue []QueueEntry        `json:"priorityQueue"`
	Updates       []Update            `json:"updates,omitempty"`
}

// Path is a reconstructed shortest path. Nodes is empty when no valid chain of
// predecessors leads back to the source.
type Path struct {
	Nodes    []string `json:"path"`
	Distance Distance `json:"distance"`
}

// Result is the full output of Dijkstra.
//
// PathExists is always true when no target was requested; otherwise it reports
// whether the target has a finite distance. Path is the path to the target
// (nil without a target or when unreachable).
type Result struct {
	Steps         []Step              `json:"steps"`
	Source        string              `json:"source"`
	Target        string              `json:"target,omitempty"`
	Distances     map[string]Distance `json:"distances"`
	Previous      map[string]string   `json:"previous"`
	ShortestPaths map[string]Path     `json:"shortestPaths"`
	Visited       []string            `json:"visited"`
	PathExists    bool                `json:"pathExists"`
	Path          []string            `json:"path,omitempty"`
}
