// Package prim_kruskal provides step-traced implementations of the two classic
// Minimum Spanning Tree (MST) algorithms, Kruskal's and Prim's, over a
// caller-supplied *core.Graph.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V and has minimal total weight.
//
//   - What is a trace?
//     Besides the tree itself, every run returns an ordered list of immutable step snapshots
//     describing what the algorithm examined, accepted, rejected or skipped, and why. A renderer
//     can replay the list frame by frame without re-running anything.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (*KruskalResult, error)
//
//   - Strategy: stable-sort the usable edges by weight and walk them in order, using a
//     dsu.UnionFind to reject edges whose endpoints already share a component.
//
//   - Steps: initialize, then one accept/reject per examined edge, then complete as soon as
//     |V|−1 edges were accepted. Each step carries the full sorted edge list annotated with
//     pending/accepted/rejected and the current component partition (UnionFind).
//
//   - Complexity: O(E log E + E·α(V)) for the algorithm; every step copies the sorted edge list
//     and the partition, so the trace itself costs O(E·(E+V)) space.
//
//   - Prim(g *core.Graph, start string) (*PrimResult, error)
//
//   - Strategy: grow one tree from start (or the first node when start is empty). The frontier
//     is a list of candidate edges kept stable-sorted by weight; after each acceptance the list
//     is filtered of edges whose far end joined the tree and re-sorted.
//
//   - Steps: initialize, accept/skip per popped edge, complete only when every node was reached.
//
//   - Complexity: O(E² log E) worst case because of the re-sort per acceptance; graphs handled
//     here are small and the stable order is part of the observable contract.
//
// Disconnected input
//
//	Neither engine treats a disconnected graph as an error. The trace simply ends without a
//	complete step and the result reports the partial forest (Complete == false).
//
// Error Conditions
//
//	- ErrInvalidGraph (alias of core.ErrInvalidGraph) when core.Validate fails.
//	- ErrInvalidStart (Prim only) when start names no node of the graph.
//	- ErrUnknownMethod (Compute only) for an unrecognized MSTOptions.Method.
//
// Determinism
//
//   - Kruskal breaks weight ties by input edge order (stable sort).
//   - Prim breaks weight ties by discovery order (stable sort of the frontier).
//   - Edges whose endpoints are not nodes of the graph are dropped before either engine starts;
//     they never appear in any step.
package prim_kruskal
