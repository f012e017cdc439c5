// Package core defines the minimal Graph and Edge primitives consumed by the
// traversal and shortest-path packages (bfs, dijkstra).
//
// A Graph is a set of string-identified vertices plus weighted or unweighted
// edges, directed or undirected as a whole (configured at construction via
// functional GraphOptions). Mutation is guarded by an internal RWMutex, so
// independent goroutines may build a graph concurrently; the algorithm
// packages treat a Graph as read-only for the duration of a call.
//
// Determinism:
//
//   - Vertices() returns IDs in ascending lexicographic order.
//   - Neighbors(id) returns outgoing edges in insertion order; undirected
//     edges appear in the adjacency of both endpoints.
//
// Errors (sentinel):
//
//   - ErrEmptyVertexID  — an empty string was supplied as a vertex ID.
//   - ErrVertexNotFound — an operation referenced a vertex that does not exist.
//   - ErrBadWeight      — a non-zero weight was supplied to an unweighted graph.
//
// Example usage:
//
//	g := core.NewGraph(core.WithWeighted())
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	edges, _ := g.Neighbors("B") // B→A(1), B→C(2)
package core
