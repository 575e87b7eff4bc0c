// Package core defines the caller-supplied Graph, Node and Edge types shared by
// every step-trace engine in lvtrace, together with the minimal precondition
// checker (Validate) and the adjacency-list builder used by Prim and Dijkstra.
//
// What & Why
//
//   - A Graph is a plain value: an ordered list of nodes and an ordered list of
//     edges. Input order is significant; engines use it to break ties.
//   - Engines never mutate a Graph. Each run constructs its own auxiliary
//     structures (adjacency list, union-find, frontier) and discards them.
//   - Node coordinates (X, Y) are carried for renderers only.
//
// Validation policy
//
//	Validate is strict on whole-graph shape and lenient on individual edges:
//
//	- ErrInvalidGraph
//	    - no nodes, OR
//	    - a node with an empty ID, or two nodes sharing an ID, OR
//	    - an edge with an empty From/To, OR
//	    - a negative, NaN or infinite weight.
//
//	An edge whose From/To names a node that does not exist is NOT an error.
//	Such edges are skipped by BuildAdjacency and by every engine, and never
//	show up in an emitted step.
//
// Adjacency
//
//	BuildAdjacency(g) maps each node ID to its outgoing arcs, in edge input
//	order. Undirected edges yield two arcs carrying the same EdgeID so that a
//	traversal in either direction maps back to one logical edge.
//
// Complexity:
//
//   - Validate:       O(V + E) time, O(V) space.
//   - BuildAdjacency: O(V + E) time and space.
package core
