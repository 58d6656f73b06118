package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/quaddro/stargraph/core"
	"github.com/quaddro/stargraph/dfs"
	"github.com/quaddro/stargraph/digraph"
)

// benchForward builds a forward star without the testing.T helpers.
func benchForward(b *testing.B, vc core.VertexID, pairs [][2]core.VertexID) *digraph.ForwardStar {
	b.Helper()
	bag := core.NewEdgeBag(len(pairs))
	for _, p := range pairs {
		_ = bag.Add(core.Edge{Orig: p[0], Dest: p[1]})
	}
	g, err := digraph.NewForward(vc, bag)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkRun_Chain measures traversal of a linear chain — maximum
// recursion depth, minimum branching.
func BenchmarkRun_Chain(b *testing.B) {
	const n = 10000
	pairs := make([][2]core.VertexID, 0, n-1)
	for i := core.VertexID(1); i < n; i++ {
		pairs = append(pairs, [2]core.VertexID{i, i + 1})
	}
	g := benchForward(b, n, pairs)

	b.ReportAllocs()
	b.SetBytes(int64(2*n - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Run(g)
	}
}

// BenchmarkRun_Random measures traversal of a random sparse digraph.
func BenchmarkRun_Random(b *testing.B) {
	const (
		v = 10000
		e = 50000
	)
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]core.VertexID, 0, e)
	for i := 0; i < e; i++ {
		pairs = append(pairs, [2]core.VertexID{
			core.VertexID(rng.Intn(v)) + 1,
			core.VertexID(rng.Intn(v)) + 1,
		})
	}
	g := benchForward(b, v, pairs)

	b.ReportAllocs()
	b.SetBytes(int64(v + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Run(g)
	}
}
