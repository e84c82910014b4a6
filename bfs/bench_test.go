package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lexgraph/lexgraph/bfs"
	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/scratch"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.New()
	for i := 0; i <= N; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%05d", i))
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%05d", i), fmt.Sprintf("v%05d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v00000", nil)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.New()
	for i := 0; i < V; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%04d", i))
	}
	// duplicates just overwrite the weight, self loops are rejected
	for k := 0; k < E; k++ {
		u := fmt.Sprintf("n%04d", rnd.Intn(V))
		v := fmt.Sprintf("n%04d", rnd.Intn(V))
		_ = g.AddEdge(u, v, 1+rnd.Intn(core.MaxWeight))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "n0000", nil)
	}
}

// BenchmarkBFS_WorkspaceReuse compares a fresh queue per call against one
// shared workspace across all calls.
func BenchmarkBFS_WorkspaceReuse(b *testing.B) {
	const N = 1000
	g := core.New()
	for i := 0; i <= N; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%04d", i))
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%04d", i), fmt.Sprintf("v%04d", i+1), 1)
	}

	b.Run("FreshQueue", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, "v0000", nil)
		}
	})

	b.Run("SharedQueue", func(b *testing.B) {
		ws := scratch.NewQueue(N)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bfs.BFS(g, "v0000", ws)
		}
	})
}
