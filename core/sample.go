package core

// SampleGraph returns the six-node demonstration graph served by the API and
// used by the CLI when no graph file is given.
//
//	A–B 4, A–D 2, D–B 1, B–C 3, D–E 7, C–F 2, E–F 1, C–E 5
//
// From A: D=2, B=3, C=6, F=8, E=9. MST cost: 1+1+2+2+3 = 9.
func SampleGraph() Graph {
	return Graph{
		Nodes: []Node{
			{ID: "A", Label: "A", X: 100, Y: 100},
			{ID: "B", Label: "B", X: 300, Y: 100},
			{ID: "C", Label: "C", X: 500, Y: 100},
			{ID: "D", Label: "D", X: 100, Y: 300},
			{ID: "E", Label: "E", X: 300, Y: 300},
			{ID: "F", Label: "F", X: 500, Y: 300},
		},
		Edges: []Edge{
			{From: "A", To: "B", Weight: 4},
			{From: "A", To: "D", Weight: 2},
			{From: "D", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 3},
			{From: "D", To: "E", Weight: 7},
			{From: "C", To: "F", Weight: 2},
			{From: "E", To: "F", Weight: 1},
			{From: "C", To: "E", Weight: 5},
		},
	}
}
