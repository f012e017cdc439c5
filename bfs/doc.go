// Package bfs provides breadth-first search over an unweighted core.Graph,
// returning visit order, hop depths, and parent links.
//
// BFS explores vertices in increasing hop distance from a start vertex, so
// on an unweighted graph the parent chain of any reached vertex is a
// shortest-hop path from the start. Use Result.PathTo to materialize it.
//
// Determinism: neighbors are expanded in edge insertion order, so for a
// given graph construction order the visit order, depths and parents are
// fully reproducible.
//
// Complexity:
//
//	– Time:  O(V + E)   every vertex enqueued at most once, every edge scanned once
//	– Space: O(V)       queue, depth and parent maps
//
// Errors (sentinel):
//
//	– ErrGraphNil        if a nil graph pointer is passed.
//	– ErrStartNotFound   if the start vertex is absent.
//	– ErrWeightedGraph   if the graph carries weights (use dijkstra instead).
//
// Example usage:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 0)
//	g.AddEdge("B", "C", 0)
//
//	res, err := bfs.BFS(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.PathTo("C")) // [A B C]
package bfs
