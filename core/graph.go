package core

import "sort"

// Directed reports whether edges added to this graph are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether this graph carries edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// AddVertex registers id as a vertex, without edges, if not already present.
// Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddEdge connects from→to with the given weight, creating either endpoint on
// demand. On an undirected graph the edge is traversable both ways.
// Returns ErrEmptyVertexID for empty endpoints, or ErrBadWeight when a
// non-zero weight is supplied to an unweighted graph.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// HasVertex reports whether id exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// The slice is freshly allocated on every call.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of logical edges added via AddEdge
// (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns a copy of the outgoing edges of id, in insertion order.
// Every returned Edge satisfies Edge.From == id.
// Returns ErrVertexNotFound when id does not exist.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// ensureVertex inserts id into the adjacency map if absent.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
	}
}
