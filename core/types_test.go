package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtrace/core"
)

func TestEdge_Key(t *testing.T) {
	assert.Equal(t, "A-B", core.Edge{From: "A", To: "B"}.Key())
	assert.Equal(t, "e1", core.Edge{ID: "e1", From: "A", To: "B"}.Key())
}

func TestGraph_NodeHelpers(t *testing.T) {
	g := core.Graph{Nodes: []core.Node{{ID: "X"}, {ID: "Y"}, {ID: "Z"}}}

	assert.Equal(t, []string{"X", "Y", "Z"}, g.NodeIDs())
	assert.Equal(t, map[string]int{"X": 0, "Y": 1, "Z": 2}, g.NodeIndex())
	assert.True(t, g.HasNode("Y"))
	assert.False(t, g.HasNode("W"))
	assert.False(t, g.HasNode(""))
}

func TestGraph_UsableEdgesKeepsOrder(t *testing.T) {
	g := core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}},
		Edges: []core.Edge{
			{From: "B", To: "A", Weight: 3},
			{From: "A", To: "ghost", Weight: 1},
			{From: "A", To: "B", Weight: 2},
		},
	}
	usable := g.UsableEdges()
	assert.Equal(t, []core.Edge{
		{From: "B", To: "A", Weight: 3},
		{From: "A", To: "B", Weight: 2},
	}, usable)
}
