// Package dijkstra provides Dijkstra's shortest-path algorithm over weighted
// graphs with non-negative edge weights, built on immutable Path records.
//
// Overview:
//
//   - ShortestPath expands a frontier of candidate Path records, always
//     popping the record with the smallest cumulative Total next, until the
//     target is finalized or the frontier drains.
//   - Each Path record is immutable and links to its predecessor record,
//     forming a strictly backward singly linked history. A cheaper route to a
//     node never mutates an existing record; it pushes a fresh one, and the
//     superseded record is discarded when popped. Because records only link
//     to records created before them, the history chain cannot form a cycle.
//   - The final route is materialized by walking predecessor links from the
//     target back to the source, then reversing.
//
// Determinism:
//
//   - Ties on Total are broken by frontier insertion order (first pushed,
//     first expanded), so results are fully deterministic for a given graph
//     construction order.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   lazy-decrease-key min-heap frontier
//	– Space: O(V + E)           best-total map plus worst-case heap entries
//
// Options:
//
//	– WithMaxCost: cap on route totals; frontier entries beyond the cap are
//	  not explored. Must be non-negative (the option panics otherwise).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the source vertex ID is empty.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrUnweightedGraph if the graph does not carry weights.
//	– ErrVertexNotFound  if the source or target vertex does not exist.
//
// A disconnected target is NOT an error: ShortestPath returns a nil *Route
// with a nil error. Negative edge weights are outside this algorithm's
// contract; they are neither validated nor supported, and results on such
// graphs are unspecified.
//
// Example usage:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 5)
//
//	route, err := dijkstra.ShortestPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(route.Nodes, route.Total) // [A B C] 3
package dijkstra
