package sorting

import "cmp"

// Insertion sorts seq ascending by insertion sort and returns a new slice.
//
// The sorted prefix grows one element at a time: each new element is shifted
// leftward past every strictly larger predecessor. Stable.
//
// Complexity: O(n) best (already sorted), O(n²) average/worst; O(n) space
// for the returned copy.
func Insertion[T cmp.Ordered](seq []T) []T {
	return InsertionFunc(seq, ascending[T])
}

// InsertionFunc is Insertion under a caller-supplied strict less predicate.
// Stability holds for any consistent less.
func InsertionFunc[T any](seq []T, less func(a, b T) bool) []T {
	out := clone(seq)
	for i := 1; i < len(out); i++ {
		v := out[i]
		j := i - 1
		// Shift larger predecessors right; strict less keeps equals in order.
		for j >= 0 && less(v, out[j]) {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = v
	}

	return out
}
