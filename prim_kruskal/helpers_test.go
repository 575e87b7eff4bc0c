package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
	"github.com/katalvlaran/lvtrace/trace"
)

// buildTriangle constructs the triangle A-B (1), B-C (2), A-C (5).
// Its MST is {A-B, B-C} with total weight 3.
func buildTriangle() *core.Graph {
	return &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "A", To: "C", Weight: 5},
		},
	}
}

// buildMediumGraph creates a connected graph with n nodes and edgesCount edges.
// A chain V0-V1-…-V(n-1) guarantees connectivity; the remaining edges are random
// with integer weights so that ties occur. The generator is seeded for reproducibility.
func buildMediumGraph(n, edgesCount int, seed int64) *core.Graph {
	g := &core.Graph{}
	for i := 0; i < n; i++ {
		g.Nodes = append(g.Nodes, core.Node{ID: fmt.Sprintf("V%d", i)})
	}

	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		g.Edges = append(g.Edges, core.Edge{
			From:   fmt.Sprintf("V%d", i-1),
			To:     fmt.Sprintf("V%d", i),
			Weight: float64(1 + r.Intn(10)),
		})
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		g.Edges = append(g.Edges, core.Edge{
			ID:     fmt.Sprintf("x%d", extra),
			From:   fmt.Sprintf("V%d", u),
			To:     fmt.Sprintf("V%d", v),
			Weight: float64(1 + r.Intn(20)),
		})
		extra--
	}

	return g
}

// edgeIDs lists the IDs of edges in order.
func edgeIDs(edges []prim_kruskal.TraceEdge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

// requireNumbered asserts step numbers are 0,1,2,… for a trace of len n.
func requireNumbered(t *testing.T, numbers []int) {
	t.Helper()
	for i, n := range numbers {
		require.Equal(t, i, n, "step %d carries sequence number %d", i, n)
	}
}

func kruskalActions(steps []prim_kruskal.KruskalStep) []trace.Action {
	out := make([]trace.Action, len(steps))
	for i, s := range steps {
		out[i] = s.Action
	}

	return out
}

func primActions(steps []prim_kruskal.PrimStep) []trace.Action {
	out := make([]trace.Action, len(steps))
	for i, s := range steps {
		out[i] = s.Action
	}

	return out
}
