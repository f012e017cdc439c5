// Package bfs defines the Result type and error sentinels for breadth-first
// search over a core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("bfs: start vertex not found")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph;
	// hop counts ignore weights, so use dijkstra there instead.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")
)

// Result carries everything a breadth-first traversal discovers.
type Result struct {
	// Order lists vertices in the order they were visited, start first.
	Order []string

	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[string]int

	// Parent maps each reached vertex (except the start) to the vertex it
	// was first discovered from. Parent chains are shortest-hop paths.
	Parent map[string]string

	start string
}

// PathTo materializes the shortest-hop path from the start to target by
// walking Parent links backward, then reversing. Returns nil when target was
// not reached by the traversal.
// Complexity: O(path length).
func (r *Result) PathTo(target string) []string {
	if _, ok := r.Depth[target]; !ok {
		return nil
	}

	var path []string
	for at := target; ; {
		path = append(path, at)
		if at == r.start {
			break
		}
		at = r.Parent[at]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
