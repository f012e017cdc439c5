// Package algokit is your in-memory toolbox of classic comparison-based
// algorithms — searching, sorting, memoized computation and shortest paths —
// written generically so they work over any ordered element type.
//
// 🚀 What is algokit?
//
//	A small, dependency-free library that brings together:
//		• Searching: linear scan & binary search over sorted sequences
//		• Sorting: insertion, bubble, selection, merge and quick sort
//		• Memoization: Fibonacci with an explicit, caller-owned cache
//		• Traversal: BFS with unweighted shortest-hop paths
//		• Shortest paths: Dijkstra over immutable Path-record chains
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure functions – inputs are never mutated; every call returns fresh results
//   - Pure Go – no cgo, no hidden deps
//   - Documented complexity – every operation states its time & space bounds
//
// Everything is organized per topic, one package each:
//
//	core/      — minimal weighted Graph primitives consumed by bfs & dijkstra
//	search/    — Linear, Binary, BinaryFunc
//	sorting/   — Insertion, Bubble, Selection, Merge, Quick (+ Func variants)
//	fibonacci/ — Fib, Memo, Naive
//	bfs/       — breadth-first search, hop depths & parent links
//	dijkstra/  — ShortestPath over non-negative weighted graphs
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     2
//	    │     │
//	    └─────C
//
//	the cheapest route A→C costs 3 (via B), not the direct edge of weight 5.
//
// Dive into each package's doc.go for full contracts, complexity analysis and
// runnable examples.
//
//	go get github.com/katalvlaran/algokit
package algokit
