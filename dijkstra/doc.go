// Package dijkstra provides a step-traced implementation of Dijkstra's
// single-source shortest-path algorithm on graphs with non-negative weights.
//
// Overview:
//
//   - Dijkstra finalizes nodes in order of increasing distance from the source,
//     relaxing the edges of each finalized node.
//   - Every finalization and every batch of distance improvements is recorded as an
//     immutable Step, so a renderer can replay the search frame by frame.
//   - After the search, shortest paths are rebuilt for every node with a finite distance.
//
// Frontier:
//
//   - The priority queue is a plain list that is stable-sorted before every pop. Entries
//     with equal distance keep their insertion order, which makes traces reproducible.
//   - When a neighbour improves, any queued entry for it is removed and the new entry is
//     appended, so a node is never queued twice.
//
// Distances:
//
//   - Distance is a tagged value: Finite(v) or Infinity. Infinity is not a large number;
//     Infinity.Add(w) stays Infinity and Infinity is never Less than anything.
//   - In JSON, finite values are numbers and Infinity is the string "Infinity".
//
// Options:
//
//   - Source(id):     starting node ID (required).
//   - WithTarget(id): stop as soon as id is finalized and narrate the path to it.
//
// Errors (sentinel):
//
//   - ErrMissingSource  if the source ID is empty (checked first).
//   - core.ErrInvalidGraph if the graph fails core.Validate.
//   - ErrUnknownSource  if the source is not a node of the graph.
//
// An unreachable or unknown target is not an error: the final step states that no
// path exists and Result.PathExists is false.
//
// Complexity:
//
//   - Time:  O(V · E log E) from the per-pop sort; graphs traced here are small.
//   - Space: O(V + E) live state, plus O(V + E) copied into every step.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("F"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Distances["F"])
package dijkstra
