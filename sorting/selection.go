package sorting

import "cmp"

// Selection sorts seq ascending by selection sort and returns a new slice.
//
// Each pass finds the minimum of the unsorted remainder and swaps it into
// place, so at most n-1 swaps occur in total. Not stable: the long-range
// swap can carry an element past an equal one.
//
// Complexity: O(n²) comparisons in every case; O(n) space for the returned
// copy.
func Selection[T cmp.Ordered](seq []T) []T {
	return SelectionFunc(seq, ascending[T])
}

// SelectionFunc is Selection under a caller-supplied strict less predicate.
func SelectionFunc[T any](seq []T, less func(a, b T) bool) []T {
	out := clone(seq)
	for i := 0; i < len(out)-1; i++ {
		min := i
		for j := i + 1; j < len(out); j++ {
			if less(out[j], out[min]) {
				min = j
			}
		}
		if min != i {
			out[i], out[min] = out[min], out[i]
		}
	}

	return out
}
