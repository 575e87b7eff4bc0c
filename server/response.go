package server

import (
	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

// Algorithm names used in responses, metrics labels and the CLI.
const (
	AlgorithmKruskal  = "kruskal"
	AlgorithmPrim     = "prim"
	AlgorithmDijkstra = "dijkstra"
)

// RunResponse is the envelope returned for every engine run.
type RunResponse struct {
	RunID     string `json:"runId"`
	Algorithm string `json:"algorithm"`
	Steps     any    `json:"steps"`
	Result    any    `json:"result"`

	stepCount int
}

// StepCount returns the number of steps in the envelope.
func (r RunResponse) StepCount() int { return r.stepCount }

// KruskalSummary is the result part of a Kruskal response.
type KruskalSummary struct {
	MSTEdges  []prim_kruskal.TraceEdge `json:"mstEdges"`
	TotalCost float64                  `json:"totalCost"`
	EdgeCount int                      `json:"edgeCount"`
	Complete  bool                     `json:"complete"`
}

// PrimSummary is the result part of a Prim response.
type PrimSummary struct {
	Start        string                   `json:"start"`
	MSTEdges     []prim_kruskal.TraceEdge `json:"mstEdges"`
	TotalCost    float64                  `json:"totalCost"`
	VisitedNodes []string                 `json:"visitedNodes"`
	Complete     bool                     `json:"complete"`
}

// DijkstraSummary is the result part of a Dijkstra response.
type DijkstraSummary struct {
	Source        string                       `json:"source"`
	Target        string                       `json:"target,omitempty"`
	Distances     map[string]dijkstra.Distance `json:"distances"`
	Previous      map[string]string            `json:"previous"`
	ShortestPaths map[string]dijkstra.Path     `json:"shortestPaths"`
	Visited       []string                     `json:"visited"`
	PathExists    bool                         `json:"pathExists"`
	Path          []string                     `json:"path,omitempty"`
}

// KruskalResponse wraps a Kruskal result. RunID is left empty.
func KruskalResponse(res *prim_kruskal.KruskalResult) RunResponse {
	return RunResponse{
		Algorithm: AlgorithmKruskal,
		Steps:     res.Steps,
		Result: KruskalSummary{
			MSTEdges:  res.MSTEdges,
			TotalCost: res.TotalCost,
			EdgeCount: res.EdgeCount,
			Complete:  res.Complete,
		},
		stepCount: len(res.Steps),
	}
}

// PrimResponse wraps a Prim result. RunID is left empty.
func PrimResponse(res *prim_kruskal.PrimResult) RunResponse {
	return RunResponse{
		Algorithm: AlgorithmPrim,
		Steps:     res.Steps,
		Result: PrimSummary{
			Start:        res.Start,
			MSTEdges:     res.MSTEdges,
			TotalCost:    res.TotalCost,
			VisitedNodes: res.VisitedNodes,
			Complete:     res.Complete,
		},
		stepCount: len(res.Steps),
	}
}

// DijkstraResponse wraps a Dijkstra result. RunID is left empty.
func DijkstraResponse(res *dijkstra.Result) RunResponse {
	return RunResponse{
		Algorithm: AlgorithmDijkstra,
		Steps:     res.Steps,
		Result: DijkstraSummary{
			Source:        res.Source,
			Target:        res.Target,
			Distances:     res.Distances,
			Previous:      res.Previous,
			ShortestPaths: res.ShortestPaths,
			Visited:       res.Visited,
			PathExists:    res.PathExists,
			Path:          res.Path,
		},
		stepCount: len(res.Steps),
	}
}
