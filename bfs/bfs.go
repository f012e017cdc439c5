package bfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for one traversal.
type walker struct {
	graph   *core.Graph
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartNotFound or ErrWeightedGraph for invalid
// input; otherwise the Result covers every vertex reachable from start.
//
// Complexity: O(V + E) time, O(V) space.
func BFS(g *core.Graph, start string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			start:  start,
		},
	}

	w.enqueue(start, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, recording visit order and expanding
// each vertex's unseen neighbors in edge insertion order.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		edges, err := w.graph.Neighbors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: failed to get neighbors of %q: %w", item.id, err)
		}
		for _, e := range edges {
			if !w.visited[e.To] {
				w.enqueue(e.To, item.depth+1, item.id)
			}
		}
	}

	return nil
}
