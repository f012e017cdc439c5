// Package sorting: shared helpers for the per-algorithm files.
package sorting

import "cmp"

// ascending is the natural strict order for cmp.Ordered element types.
func ascending[T cmp.Ordered](a, b T) bool { return a < b }

// clone returns a fresh copy of seq so callers' inputs stay untouched.
func clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)

	return out
}
