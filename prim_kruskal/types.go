// Package prim_kruskal defines step and result types, configuration options and
// sentinel errors for traced MST computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/trace"
)

// ErrInvalidGraph is returned when the input fails core.Validate.
var ErrInvalidGraph = core.ErrInvalidGraph

// ErrInvalidStart indicates Prim was given a start node that does not exist,
// or the graph has no node to start from.
var ErrInvalidStart = errors.New("prim_kruskal: invalid start node")

// ErrUnknownMethod indicates MSTOptions.Method is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Step actions specific to the MST engines. See also trace.ActionInitialize
// and trace.ActionComplete.
const (
	// ActionAccept records an edge added to the tree.
	ActionAccept trace.Action = "accept"

	// ActionReject records a Kruskal edge dropped because it would close a cycle.
	ActionReject trace.Action = "reject"

	// ActionSkip records a stale Prim frontier edge whose far end is already in the tree.
	ActionSkip trace.Action = "skip"
)

// EdgeStatus annotates a sorted edge in a Kruskal step.
type EdgeStatus string

// Edge statuses.
const (
	StatusPending  EdgeStatus = "pending"
	StatusAccepted EdgeStatus = "accepted"
	StatusRejected EdgeStatus = "rejected"
)

// TraceEdge is the value form of an edge inside a step. It carries no pointers,
// so copying a slice of TraceEdge copies the edges.
type TraceEdge struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// SortedEdge is a TraceEdge annotated with its status at a given Kruskal step.
type SortedEdge struct {
	TraceEdge
	Status EdgeStatus `json:"status"`
}

// Component is one connected component of the Kruskal forest.
// Members are node IDs in graph input order; Root is the union-find root's ID.
type Component struct {
	Root    string   `json:"root"`
	Members []string `json:"members"`
}

// KruskalStep is an immutable snapshot taken after one Kruskal state transition.
//
// CurrentIndex is the position in SortedEdges of the edge examined by this step,
// or -1 for initialize and complete steps.
type KruskalStep struct {
	Step        int          `json:"step"`
	Action      trace.Action `json:"action"`
	Description string       `json:"description"`

	SortedEdges  []SortedEdge `json:"sortedEdges"`
	CurrentIndex int          `json:"currentIndex"`
	CurrentEdge  *TraceEdge   `json:"currentEdge,omitempty"`
	MSTEdges     []TraceEdge  `json:"mstEdges"`
	TotalCost    float64      `json:"totalCost"`
	UnionFind    []Component  `json:"unionFindState"`
}

// KruskalResult is the full output of Kruskal.
//
// EdgeCount == len(MSTEdges). Complete is true when |V|−1 edges were accepted,
// which includes a single-node graph whose trace is the initialize step alone;
// false means the graph is disconnected and MSTEdges is a spanning forest.
type KruskalResult struct {
	Steps     []KruskalStep `json:"steps"`
	MSTEdges  []TraceEdge   `json:"mstEdges"`
	TotalCost float64       `json:"totalCost"`
	EdgeCount int           `json:"edgeCount"`
	Complete  bool          `json:"complete"`
}

// PrimStep is an immutable snapshot taken after one Prim state transition.
//
// NewEdges is set on accept steps only: the frontier edges discovered from the
// node that just joined the tree.
type PrimStep struct {
	Step        int          `json:"step"`
	Action      trace.Action `json:"action"`
	Description string       `json:"description"`

	CurrentEdge   *TraceEdge  `json:"currentEdge,omitempty"`
	VisitedNodes  []string    `json:"visitedNodes"`
	PriorityQueue []TraceEdge `json:"priorityQueue"`
	MSTEdges      []TraceEdge `json:"mstEdges"`
	TotalCost     float64     `json:"totalCost"`
	NewEdges      []TraceEdge `json:"newEdges,omitempty"`
}

// PrimResult is the full output of Prim.
//
// Complete is true when every node was reached from Start.
type PrimResult struct {
	Steps        []PrimStep  `json:"steps"`
	Start        string      `json:"start"`
	MSTEdges     []TraceEdge `json:"mstEdges"`
	TotalCost    float64     `json:"totalCost"`
	VisitedNodes []string    `json:"visitedNodes"`
	Complete     bool        `json:"complete"`
}

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MSTOptions selects the trace engine behind Compute.
//
// Root is passed to Prim as its start node; an empty Root starts the trace at
// the first node in declaration order. Kruskal's trace has no start node and
// never reads Root.
type MSTOptions struct {
	Method string // MethodKruskal or MethodPrim
	Root   string
}

// Option mutates MSTOptions before Compute runs an engine.
type Option func(*MSTOptions)

// WithMethod picks the engine by name. Any name other than MethodKruskal or
// MethodPrim makes Compute fail with ErrUnknownMethod.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the node Prim's trace grows from. An ID missing from the graph
// surfaces as ErrInvalidStart.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions runs Kruskal, the engine that needs no start node.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Summary is the method-independent outcome of Compute.
type Summary struct {
	Method    string      `json:"method"`
	MSTEdges  []TraceEdge `json:"mstEdges"`
	TotalCost float64     `json:"totalCost"`
	Complete  bool        `json:"complete"`
	StepCount int         `json:"stepCount"`
}

// Compute applies opts over DefaultOptions and runs the selected engine.
//
//   - MethodKruskal: Kruskal(graph).
//   - MethodPrim:    Prim(graph, Root).
//   - otherwise:     ErrUnknownMethod.
//
// Use Kruskal or Prim directly when the step trace is needed.
func Compute(graph *core.Graph, opts ...Option) (Summary, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		res, err := Kruskal(graph)
		if err != nil {
			return Summary{}, err
		}

		return Summary{
			Method:    MethodKruskal,
			MSTEdges:  res.MSTEdges,
			TotalCost: res.TotalCost,
			Complete:  res.Complete,
			StepCount: len(res.Steps),
		}, nil
	case MethodPrim:
		res, err := Prim(graph, cfg.Root)
		if err != nil {
			return Summary{}, err
		}

		return Summary{
			Method:    MethodPrim,
			MSTEdges:  res.MSTEdges,
			TotalCost: res.TotalCost,
			Complete:  res.Complete,
			StepCount: len(res.Steps),
		}, nil
	default:
		return Summary{}, ErrUnknownMethod
	}
}
