// Package dsu provides a disjoint-set (union-find) structure over dense
// integer indices 0..n-1, used by Kruskal's engine for cycle detection.
//
// Callers map their node IDs to indices once up front; every index passed to
// Find, Union or Connected must lie in [0, Len()). There are no error paths.
//
// Complexity:
//
//   - Find / Union / Connected: amortized O(α(n)) with path compression and
//     union by rank.
//   - Groups: O(n α(n)).
package dsu

// UnionFind is a disjoint-set forest.
//
// parent[i] is i itself for roots, otherwise an ancestor of i.
// rank[i] is an upper bound on the height of the tree rooted at i.
type UnionFind struct {
	parent []int
	rank   []int
}

// New returns a UnionFind of n singleton sets.
// Complexity: O(n).
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Find returns the root of x's set, compressing the path on the way up.
// Iterative to avoid deep recursion on degenerate trees.
func (uf *UnionFind) Find(x int) int {
	// Locate the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Point every node on the walked path straight at the root.
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y and reports whether a merge took
// place (false when they were already connected).
//
// The lower-rank root is attached under the higher-rank one. On equal ranks
// y's root goes under x's root and x's root rank is incremented.
func (uf *UnionFind) Union(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}

	return true
}

// Connected reports whether x and y share a root.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Groups returns the current partition. Groups are ordered by their smallest
// member and members are ascending, so the result is deterministic for a
// fixed sequence of unions.
func (uf *UnionFind) Groups() [][]int {
	slot := make(map[int]int, len(uf.parent)) // root → position in out
	out := make([][]int, 0)
	for i := range uf.parent {
		r := uf.Find(i)
		pos, ok := slot[r]
		if !ok {
			pos = len(out)
			slot[r] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], i)
	}

	return out
}
