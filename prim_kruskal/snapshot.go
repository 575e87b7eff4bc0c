package prim_kruskal

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dsu"
)

// Every step owns its collections. The helpers below are the only way engine
// state enters a step; each returns freshly allocated storage.

// cloneEdges returns a copy of edges. A nil or empty input yields an empty,
// non-nil slice so JSON renders [] rather than null.
func cloneEdges(edges []TraceEdge) []TraceEdge {
	out := make([]TraceEdge, len(edges))
	copy(out, edges)

	return out
}

// cloneStrings returns a copy of ss, never nil.
func cloneStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)

	return out
}

// edgeRef returns a pointer to a private copy of e.
func edgeRef(e TraceEdge) *TraceEdge {
	c := e

	return &c
}

// annotate pairs the sorted edges with their per-position status.
func annotate(sorted []TraceEdge, status []EdgeStatus) []SortedEdge {
	out := make([]SortedEdge, len(sorted))
	for i, e := range sorted {
		out[i] = SortedEdge{TraceEdge: e, Status: status[i]}
	}

	return out
}

// partition renders the union-find state as components of node IDs.
func partition(uf *dsu.UnionFind, ids []string) []Component {
	groups := uf.Groups()
	out := make([]Component, len(groups))
	for i, grp := range groups {
		members := make([]string, len(grp))
		for j, idx := range grp {
			members[j] = ids[idx]
		}
		out[i] = Component{Root: ids[uf.Find(grp[0])], Members: members}
	}

	return out
}

// toTraceEdge converts an input edge to its trace form, defaulting the ID.
func toTraceEdge(e core.Edge) TraceEdge {
	return TraceEdge{ID: e.Key(), From: e.From, To: e.To, Weight: e.Weight}
}

// formatWeight renders w without trailing zeros (3, 2.5, 0.125).
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// formatSet renders members as "{A, B, C}".
func formatSet(members []string) string {
	return "{" + strings.Join(members, ", ") + "}"
}
