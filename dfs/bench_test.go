package dfs_test

import (
	"testing"

	"github.com/katalvlaran/incgraph/core"
	"github.com/katalvlaran/incgraph/dfs"
)

// benchChain builds a directed chain of n vertices.
func benchChain(n int) (*core.Graph, *core.Vertex) {
	g := core.NewGraph(core.WithVertexCapacity(n), core.WithArcCapacity(n))
	prev := g.AddVertex()
	start := prev
	for i := 1; i < n; i++ {
		next := g.AddVertex()
		_, _ = g.AddArc(prev, next)
		prev = next
	}
	return g, start
}

// BenchmarkDFS_Chain measures a full run over a deep chain; the work
// stack keeps memory linear without goroutine stack growth.
func BenchmarkDFS_Chain(b *testing.B) {
	const n = 10000
	g, start := benchChain(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		search, err := dfs.New(g, start)
		if err != nil {
			b.Fatal(err)
		}
		if err := search.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDFS_Cycle measures low-link folding around a large cycle.
func BenchmarkDFS_Cycle(b *testing.B) {
	const n = 5000
	g, start := benchChain(n)
	var last *core.Vertex
	g.MapVertices(func(v *core.Vertex) {
		if v.OutDegree(true) == 0 {
			last = v
		}
	})
	if last != nil {
		_, _ = g.AddArc(last, start)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		search, err := dfs.New(g, start)
		if err != nil {
			b.Fatal(err)
		}
		if err := search.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
