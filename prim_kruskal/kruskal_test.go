package prim_kruskal_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
	"github.com/katalvlaran/lvtrace/trace"
)

// TestKruskal_InvalidGraph verifies validation failures surface as ErrInvalidGraph.
func TestKruskal_InvalidGraph(t *testing.T) {
	_, err := prim_kruskal.Kruskal(&core.Graph{})
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)

	_, err = prim_kruskal.Kruskal(&core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}},
		Edges: []core.Edge{{From: "A", To: "B", Weight: -2}},
	})
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
}

// TestKruskal_Triangle checks edges, cost and the exact action sequence.
func TestKruskal_Triangle(t *testing.T) {
	res, err := prim_kruskal.Kruskal(buildTriangle())
	require.NoError(t, err)

	assert.Equal(t, 3.0, res.TotalCost)
	assert.Equal(t, 2, res.EdgeCount)
	assert.True(t, res.Complete)
	assert.Equal(t, []string{"A-B", "B-C"}, edgeIDs(res.MSTEdges))
	assert.Equal(t, []trace.Action{
		trace.ActionInitialize, prim_kruskal.ActionAccept, prim_kruskal.ActionAccept, trace.ActionComplete,
	}, kruskalActions(res.Steps))

	// The heaviest edge is never examined; it stays pending in the final frame.
	last := res.Steps[len(res.Steps)-1]
	assert.Equal(t, -1, last.CurrentIndex)
	assert.Nil(t, last.CurrentEdge)
	assert.Equal(t, []prim_kruskal.EdgeStatus{
		prim_kruskal.StatusAccepted, prim_kruskal.StatusAccepted, prim_kruskal.StatusPending,
	}, statuses(last.SortedEdges))
}

// TestKruskal_SampleGraph runs the demonstration graph end to end.
func TestKruskal_SampleGraph(t *testing.T) {
	g := core.SampleGraph()
	res, err := prim_kruskal.Kruskal(&g)
	require.NoError(t, err)

	assert.Equal(t, 9.0, res.TotalCost)
	assert.Equal(t, []string{"D-B", "E-F", "A-D", "C-F", "B-C"}, edgeIDs(res.MSTEdges))
	assert.Len(t, res.Steps, 7)

	// Initial partition: six singletons; every edge pending.
	init := res.Steps[0]
	assert.Len(t, init.UnionFind, 6)
	for _, se := range init.SortedEdges {
		assert.Equal(t, prim_kruskal.StatusPending, se.Status)
	}

	// After accepting D-B, D's root absorbs B.
	first := res.Steps[1]
	require.Equal(t, prim_kruskal.ActionAccept, first.Action)
	assert.Equal(t, 0, first.CurrentIndex)
	assert.Equal(t, []prim_kruskal.Component{
		{Root: "A", Members: []string{"A"}},
		{Root: "D", Members: []string{"B", "D"}},
		{Root: "C", Members: []string{"C"}},
		{Root: "E", Members: []string{"E"}},
		{Root: "F", Members: []string{"F"}},
	}, first.UnionFind)
	assert.Contains(t, first.Description, "{D}")
	assert.Contains(t, first.Description, "{B}")

	// Final partition: one component.
	last := res.Steps[len(res.Steps)-1]
	require.Len(t, last.UnionFind, 1)
	assert.Equal(t, g.NodeIDs(), last.UnionFind[0].Members)
}

// TestKruskal_StableTieBreak verifies equal weights keep input order.
func TestKruskal_StableTieBreak(t *testing.T) {
	g := &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{ID: "e1", From: "B", To: "C", Weight: 1},
			{ID: "e2", From: "A", To: "C", Weight: 1},
			{ID: "e3", From: "A", To: "B", Weight: 1},
		},
	}
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2"}, edgeIDs(res.MSTEdges))

	init := res.Steps[0]
	assert.Equal(t, []string{"e1", "e2", "e3"}, sortedIDs(init.SortedEdges))
}

// TestKruskal_RejectsCycle covers the reject branch and its narration.
func TestKruskal_RejectsCycle(t *testing.T) {
	g := &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "A", To: "C", Weight: 3},
			{From: "C", To: "D", Weight: 4},
		},
	}
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, []trace.Action{
		trace.ActionInitialize,
		prim_kruskal.ActionAccept,
		prim_kruskal.ActionAccept,
		prim_kruskal.ActionReject,
		prim_kruskal.ActionAccept,
		trace.ActionComplete,
	}, kruskalActions(res.Steps))

	reject := res.Steps[3]
	assert.Equal(t, 2, reject.CurrentIndex)
	assert.Equal(t, "A-C", reject.CurrentEdge.ID)
	assert.Contains(t, reject.Description, "cycle")
	assert.Equal(t, prim_kruskal.StatusRejected, reject.SortedEdges[2].Status)
	assert.Equal(t, prim_kruskal.StatusPending, reject.SortedEdges[3].Status)
	assert.Equal(t, 7.0, res.TotalCost)
}

// TestKruskal_NoEdges yields a single initialize step and an empty result.
func TestKruskal_NoEdges(t *testing.T) {
	g := &core.Graph{Nodes: []core.Node{{ID: "A"}, {ID: "B"}}}
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	require.Len(t, res.Steps, 1)
	assert.Equal(t, trace.ActionInitialize, res.Steps[0].Action)
	assert.Empty(t, res.MSTEdges)
	assert.Zero(t, res.TotalCost)
	assert.False(t, res.Complete)
}

// TestKruskal_SingleNode keeps the initialize-only trace but reports a complete tree.
func TestKruskal_SingleNode(t *testing.T) {
	res, err := prim_kruskal.Kruskal(&core.Graph{Nodes: []core.Node{{ID: "A"}}})
	require.NoError(t, err)

	require.Len(t, res.Steps, 1)
	assert.Equal(t, trace.ActionInitialize, res.Steps[0].Action)
	assert.Zero(t, res.EdgeCount)
	assert.True(t, res.Complete)

	prim, err := prim_kruskal.Prim(&core.Graph{Nodes: []core.Node{{ID: "A"}}}, "")
	require.NoError(t, err)
	assert.Equal(t, prim.Complete, res.Complete)
}

// TestKruskal_Disconnected ends without a complete step and reports a forest.
func TestKruskal_Disconnected(t *testing.T) {
	g := &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "C", To: "D", Weight: 2},
			{ID: "ba", From: "B", To: "A", Weight: 3},
		},
	}
	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	assert.False(t, res.Complete)
	assert.Equal(t, 2, res.EdgeCount)
	assert.Equal(t, 3.0, res.TotalCost)
	assert.NotEqual(t, trace.ActionComplete, res.Steps[len(res.Steps)-1].Action)
	assert.Equal(t, prim_kruskal.ActionReject, res.Steps[len(res.Steps)-1].Action)
	assert.Len(t, res.Steps[len(res.Steps)-1].UnionFind, 2)
}

// TestKruskal_DanglingEdgeSkipped ensures unknown endpoints never reach a step.
func TestKruskal_DanglingEdgeSkipped(t *testing.T) {
	g := buildTriangle()
	g.Edges = append([]core.Edge{{ID: "ghost", From: "A", To: "Z", Weight: 0}}, g.Edges...)

	res, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.TotalCost)
	for _, s := range res.Steps {
		for _, se := range s.SortedEdges {
			assert.NotEqual(t, "ghost", se.ID)
		}
		for _, e := range s.MSTEdges {
			assert.NotEqual(t, "ghost", e.ID)
		}
	}
}

// TestKruskal_StepsNumbered checks monotonic sequence numbers on a larger graph.
func TestKruskal_StepsNumbered(t *testing.T) {
	res, err := prim_kruskal.Kruskal(buildMediumGraph(20, 60, 7))
	require.NoError(t, err)

	nums := make([]int, len(res.Steps))
	for i, s := range res.Steps {
		nums[i] = s.Step
	}
	requireNumbered(t, nums)
	assert.Equal(t, trace.ActionInitialize, res.Steps[0].Action)
	assert.Equal(t, trace.ActionComplete, res.Steps[len(res.Steps)-1].Action)
	assert.Len(t, res.MSTEdges, 19)
}

// TestKruskal_SnapshotIsolation mutates emitted steps and the result and
// verifies no other frame changes.
func TestKruskal_SnapshotIsolation(t *testing.T) {
	g := core.SampleGraph()
	res, err := prim_kruskal.Kruskal(&g)
	require.NoError(t, err)

	// Reference copy produced by an independent run.
	ref, err := prim_kruskal.Kruskal(&g)
	require.NoError(t, err)

	// Scribble over every collection of step 1 and over the result.
	s := &res.Steps[1]
	s.SortedEdges[0].Status = prim_kruskal.StatusRejected
	s.SortedEdges[0].Weight = 99
	s.MSTEdges[0].ID = "tampered"
	s.UnionFind[0].Members[0] = "tampered"
	s.CurrentEdge.ID = "tampered"
	res.MSTEdges[0].ID = "tampered"

	for i := range res.Steps {
		if i == 1 {
			continue
		}
		if diff := cmp.Diff(ref.Steps[i], res.Steps[i]); diff != "" {
			t.Errorf("step %d changed after mutating step 1 (-want +got):\n%s", i, diff)
		}
	}
	// The graph itself is untouched.
	assert.Equal(t, core.SampleGraph(), g)
}

// TestKruskal_AcceptedCountProperty checks min(E, V-1) acceptance and acyclicity.
func TestKruskal_AcceptedCountProperty(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := buildMediumGraph(12, 30, seed)
		res, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		require.Len(t, res.MSTEdges, len(g.Nodes)-1)

		// Acyclic: re-adding accepted edges to a fresh forest never joins a component to itself.
		parent := map[string]string{}
		var find func(string) string
		find = func(x string) string {
			if p, ok := parent[x]; ok && p != x {
				return find(p)
			}
			return x
		}
		for _, e := range res.MSTEdges {
			ru, rv := find(e.From), find(e.To)
			require.NotEqual(t, ru, rv, "seed %d: edge %s closes a cycle", seed, e.ID)
			parent[ru] = rv
		}
	}
}

func statuses(edges []prim_kruskal.SortedEdge) []prim_kruskal.EdgeStatus {
	out := make([]prim_kruskal.EdgeStatus, len(edges))
	for i, e := range edges {
		out[i] = e.Status
	}

	return out
}

func sortedIDs(edges []prim_kruskal.SortedEdge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}
