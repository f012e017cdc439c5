// Package dijkstra implements the frontier expansion over Path records.
//
// Notes on implementation choices:
//
//   - The frontier is a min-heap under lazy decrease-key: a cheaper route to
//     a node pushes a fresh Path record, and stale records are skipped when
//     popped (their destination is already finalized).
//   - Equal totals pop in insertion order via a monotonic sequence number,
//     keeping expansion fully deterministic.
//   - The search is target-directed: it stops as soon as the target is
//     finalized rather than exhausting the graph.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// ShortestPath computes the cheapest route from source to target in the
// weighted graph g.
//
// Returns:
//
//   - route: the materialized cheapest route, or nil when target is
//     unreachable from source ("no path" is a normal outcome, not an error).
//   - err:   a sentinel validation error, or nil.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. source must exist in g (ErrVertexNotFound).
//  5. target must exist in g (ErrVertexNotFound).
//
// Negative edge weights are outside the contract and are not checked;
// results on graphs containing them are unspecified.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*Route, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	r := &runner{
		g:       g,
		options: cfg,
		target:  target,
		best:    make(map[string]int64, g.VertexCount()),
		done:    make(map[string]bool, g.VertexCount()),
	}
	r.init(source)

	return r.process()
}

// runner holds the mutable state of a single search.
type runner struct {
	g       *core.Graph
	options Options
	target  string

	// best maps each reached vertex to the cheapest total known so far;
	// a frontier record beaten here is superseded and will be discarded.
	best map[string]int64

	// done marks vertices whose cheapest total is finalized.
	done map[string]bool

	frontier frontier
	seq      uint64 // monotonic push counter; breaks Total ties
}

// init seeds the frontier with the zero-cost origin record.
func (r *runner) init(source string) {
	heap.Init(&r.frontier)
	r.best[source] = 0
	r.push(&Path{Total: 0, Dest: source, Prev: nil})
}

// process runs the expansion loop until the target is finalized, the cost
// cap cuts exploration off, or the frontier drains (no path).
func (r *runner) process() (*Route, error) {
	for r.frontier.Len() > 0 {
		p := heap.Pop(&r.frontier).(*frontierItem).path

		// Superseded or duplicate record for a finalized vertex: discard.
		if r.done[p.Dest] {
			continue
		}

		// The frontier minimum already exceeds the cap; nothing cheaper is
		// left anywhere, so the target is unreachable within budget.
		if p.Total > r.options.MaxCost {
			break
		}

		// p is now the cheapest way to reach p.Dest; finalize it.
		r.done[p.Dest] = true

		if p.Dest == r.target {
			return &Route{Nodes: p.Nodes(), Total: p.Total}, nil
		}

		if err := r.relax(p); err != nil {
			return nil, err
		}
	}

	// Frontier drained without finalizing the target: no path.
	return nil, nil
}

// relax extends p along every outgoing edge of its destination, pushing a
// fresh Path record wherever that yields a strictly cheaper total.
func (r *runner) relax(p *Path) error {
	edges, err := r.g.Neighbors(p.Dest)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", p.Dest, err)
	}

	for _, e := range edges {
		if r.done[e.To] {
			continue
		}

		total := p.Total + e.Weight
		if total > r.options.MaxCost {
			continue
		}

		// Strict improvement only; equal-cost rediscoveries keep the
		// first-inserted record (deterministic tie-break).
		if known, ok := r.best[e.To]; ok && total >= known {
			continue
		}

		r.best[e.To] = total
		r.push(&Path{Total: total, Dest: e.To, Prev: p})
	}

	return nil
}

// push wraps p with the next sequence number and adds it to the frontier.
func (r *runner) push(p *Path) {
	heap.Push(&r.frontier, &frontierItem{path: p, seq: r.seq})
	r.seq++
}

// frontierItem pairs a Path record with its frontier insertion sequence.
type frontierItem struct {
	path *Path
	seq  uint64
}

// frontier is a min-heap of *frontierItem ordered by (Total, seq) ascending.
// Lazy decrease-key: improved routes push new items, stale items are
// discarded when popped.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by smaller Total first, then earlier insertion.
func (f frontier) Less(i, j int) bool {
	if f[i].path.Total != f[j].path.Total {
		return f[i].path.Total < f[j].path.Total
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap; x must be a *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the Path chain for GC
	*f = old[:n-1]

	return item
}
