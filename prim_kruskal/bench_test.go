package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

// BenchmarkKruskal measures a traced run on 100 nodes / 400 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(100, 400, 42) // pre-build graph once
	b.ResetTimer()                      // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures a traced run on 100 nodes / 400 edges from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(100, 400, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, "V0")
	}
}
