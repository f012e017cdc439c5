// Package dijkstra defines the Path record, the Route result, configuration
// options, and sentinel errors for the shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not built with
	// core.WithWeighted(); shortest paths need edge weights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Path is one candidate route in the frontier: the cumulative weight Total
// from the source to Dest, plus a link to the record it extends.
//
// Records are immutable once created. Prev chains run strictly backward in
// creation order (the origin record has Prev == nil), so a chain can never
// form a cycle; each record exclusively owns its history, and superseded
// records are simply dropped, never mutated in place.
type Path struct {
	// Total is the sum of edge weights from the source along this chain.
	Total int64

	// Dest is the vertex this record reaches.
	Dest string

	// Prev is the record this one extends; nil at the source.
	Prev *Path
}

// Nodes materializes the route recorded by p, source first.
// Complexity: O(path length).
func (p *Path) Nodes() []string {
	// Walk back to the origin, then reverse in place.
	var nodes []string
	for rec := p; rec != nil; rec = rec.Prev {
		nodes = append(nodes, rec.Dest)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes
}

// Route is the materialized result of a successful search.
type Route struct {
	// Nodes lists the vertices of the cheapest route, source first,
	// target last.
	Nodes []string

	// Total is the sum of edge weights along Nodes.
	Total int64
}

// Options configures the behavior of ShortestPath.
//
// MaxCost – cap on cumulative totals; frontier entries beyond it are not
// explored. Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxCost int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxCost sets a maximum route cost. Candidates whose total would exceed
// it are never explored, so unreachable-within-budget targets report no path.
// Panics with ErrBadMaxCost on a negative value.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options ShortestPath starts from before
// applying functional overrides.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.MaxInt64,
	}
}
