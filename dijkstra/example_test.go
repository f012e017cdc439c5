// Package dijkstra_test provides runnable examples for the shortest-path
// search. Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

// ExampleShortestPath demonstrates the classic triangle: the two-hop route
// beats the direct edge.
func ExampleShortestPath() {
	// 1) Create a new weighted graph (undirected by default).
	g := core.NewGraph(core.WithWeighted())
	// 2) Add the triangle A—B(1), B—C(2), A—C(5).
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	// 3) Ask for the cheapest route A→C.
	route, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(route.Nodes, route.Total)
	// Output: [A B C] 3
}

// ExampleShortestPath_noPath shows that an unreachable target is a normal
// outcome (nil route, nil error), not an error.
func ExampleShortestPath_noPath() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("Z") // isolated vertex

	route, err := dijkstra.ShortestPath(g, "A", "Z")
	fmt.Println(route, err)
	// Output: <nil> <nil>
}

// ExampleShortestPath_withMaxCost caps exploration at a travel budget.
func ExampleShortestPath_withMaxCost() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("B", "C", 4)

	route, _ := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxCost(5))
	fmt.Println("within 5:", route)

	route, _ = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxCost(8))
	fmt.Println("within 8:", route.Nodes, route.Total)
	// Output:
	// within 5: <nil>
	// within 8: [A B C] 8
}
