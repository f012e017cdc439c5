package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

// buildLadder creates a connected weighted graph of n vertices: a chain
// V0—V1—…—V(n-1) plus extra random shortcut edges, seeded for
// reproducibility.
func buildLadder(n, extra int) *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	rng := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1+rng.Intn(10)))
	}
	for i := 0; i < extra; i++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(1+rng.Intn(100)))
	}

	return g
}

func benchShortestPath(b *testing.B, n, extra int) {
	g := buildLadder(n, extra)
	target := fmt.Sprintf("V%d", n-1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, "V0", target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPath_100V(b *testing.B) { benchShortestPath(b, 100, 200) }
func BenchmarkShortestPath_1kV(b *testing.B)  { benchShortestPath(b, 1_000, 2_000) }
func BenchmarkShortestPath_10kV(b *testing.B) { benchShortestPath(b, 10_000, 20_000) }
