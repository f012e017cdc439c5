// Package core declares the Graph, Edge, GraphOption types, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was supplied as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight supplied to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Edge represents one traversable connection leaving a vertex.
//
// Edges are stored pre-oriented: Neighbors(u) only ever yields edges with
// From == u, so consumers never need to filter by direction themselves.
// An undirected edge contributes one Edge to the adjacency of each endpoint.
type Edge struct {
	// From is the vertex this edge leaves.
	From string

	// To is the vertex this edge reaches.
	To string

	// Weight is the cost of traversing the edge.
	// Always zero in unweighted graphs.
	Weight int64
}

// GraphOption configures behavior of a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges of the graph
// (true = one-way edges, false = bidirectional). Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) {
		g.directed = directed
	}
}

// WithWeighted enables non-zero edge weights. Without it, AddEdge rejects any
// non-zero weight with ErrBadWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) {
		g.weighted = true
	}
}

// Graph is a mutable in-memory graph over string vertex IDs.
//
// All mutating and reading methods take the internal lock, so a Graph may be
// built from several goroutines. The zero value is not usable; always
// construct via NewGraph.
type Graph struct {
	mu sync.RWMutex

	directed bool
	weighted bool

	// adjacency maps each vertex ID to its outgoing edges, insertion-ordered.
	// A vertex with no edges maps to a nil slice; presence in the map is what
	// defines vertex existence.
	adjacency map[string][]Edge

	edgeCount int
}

// NewGraph returns an empty Graph configured by the supplied options.
// Defaults: undirected, unweighted.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
