// Package bfs_test provides runnable examples for breadth-first search.
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

// ExampleBFS walks a small network and reports hop depths.
func ExampleBFS() {
	// 1) Build an unweighted, undirected network.
	g := core.NewGraph()
	_ = g.AddEdge("hub", "a", 0)
	_ = g.AddEdge("hub", "b", 0)
	_ = g.AddEdge("a", "leaf", 0)

	// 2) Traverse from the hub.
	res, err := bfs.BFS(g, "hub")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", res.Order)
	fmt.Println("leaf depth:", res.Depth["leaf"])
	// Output:
	// order: [hub a b leaf]
	// leaf depth: 2
}

// ExampleResult_PathTo materializes the shortest-hop path via parent links.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 0)
	_ = g.AddEdge("B", "C", 0)

	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.PathTo("C"))
	// Output: [A B C]
}
