package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtrace/core"
)

type AdjacencySuite struct {
	suite.Suite
	g core.Graph
}

func (s *AdjacencySuite) SetupTest() {
	s.g = core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 1},
			{ID: "bc", From: "B", To: "C", Weight: 2, Directed: true},
			{From: "C", To: "Q", Weight: 3}, // dangling
		},
	}
}

func (s *AdjacencySuite) TestEveryNodeHasEntry() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(&s.g)
	require.Len(adj, 3)
	for _, id := range s.g.NodeIDs() {
		_, ok := adj[id]
		require.True(ok, "node %s must have an adjacency entry", id)
	}
}

func (s *AdjacencySuite) TestUndirectedSharesEdgeID() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(&s.g)

	require.Equal([]core.Arc{{To: "B", Weight: 1, EdgeID: "A-B"}}, adj.Neighbors("A"))
	// B sees the mirror of A-B first, then its own directed arc.
	require.Equal([]core.Arc{
		{To: "A", Weight: 1, EdgeID: "A-B"},
		{To: "C", Weight: 2, EdgeID: "bc"},
	}, adj.Neighbors("B"))
}

func (s *AdjacencySuite) TestDirectedIsOneWayAndDanglingSkipped() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(&s.g)
	require.Empty(adj.Neighbors("C"), "directed B→C must not give C an arc; C→Q is dangling")
	require.Nil(adj.Neighbors("Q"))
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
