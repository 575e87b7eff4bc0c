package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

// ExampleKruskal demonstrates the Kruskal trace on a triangle graph.
// Edges: A–B (1), B–C (2), A–C (4). The heaviest edge is never examined.
func ExampleKruskal() {
	g := &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2},
			{From: "A", To: "C", Weight: 4},
		},
	}

	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range res.Steps {
		fmt.Printf("%d %s: %s\n", s.Step, s.Action, s.Description)
	}
	// Output:
	// 0 initialize: Sorted 3 edge(s) by weight. Each of the 3 node(s) starts in its own component.
	// 1 accept: Accept edge A-B (weight 1): joins {A} and {B}. Total cost is now 1.
	// 2 accept: Accept edge B-C (weight 2): joins {A, B} and {C}. Total cost is now 3.
	// 3 complete: Minimum spanning tree complete: 2 edge(s), total cost 3.
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon.
// Edges: A–B (1), A–E (12), B–C (2), C–D (3), D–E (5). MST weight = 11.
func ExamplePrim() {
	g := &core.Graph{
		Nodes: []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		Edges: []core.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "A", To: "E", Weight: 12},
			{From: "B", To: "C", Weight: 2},
			{From: "C", To: "D", Weight: 3},
			{From: "D", To: "E", Weight: 5},
		},
	}

	res, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: ", res.TotalCost)
	for i, e := range res.MSTEdges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleCompute runs Prim through the method-independent dispatcher.
func ExampleCompute() {
	g := core.SampleGraph()
	sum, err := prim_kruskal.Compute(&g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot("C"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum.Method, sum.TotalCost, sum.Complete)
	// Output: prim 9 true
}
