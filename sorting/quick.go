package sorting

import "cmp"

// Quick sorts seq ascending by quicksort and returns a new slice.
//
// Pivot policy: the last element of each partition range, with in-place
// Lomuto partitioning on the returned copy — elements strictly less than the
// pivot end up before it, everything else after. Not stable.
//
// Complexity: O(n log n) average, O(n²) worst (already-sorted input drives
// the last-element pivot to its degenerate case); O(log n) average recursion
// depth plus O(n) for the returned copy.
func Quick[T cmp.Ordered](seq []T) []T {
	return QuickFunc(seq, ascending[T])
}

// QuickFunc is Quick under a caller-supplied strict less predicate.
func QuickFunc[T any](seq []T, less func(a, b T) bool) []T {
	out := clone(seq)
	quicksort(out, 0, len(out)-1, less)

	return out
}

// quicksort recursively sorts a[lo:hi+1] in place.
func quicksort[T any](a []T, lo, hi int, less func(a, b T) bool) {
	if lo >= hi {
		return
	}
	p := partition(a, lo, hi, less)
	quicksort(a, lo, p-1, less)
	quicksort(a, p+1, hi, less)
}

// partition applies the Lomuto scheme with a[hi] as pivot and returns the
// pivot's final index: a[lo:p] < pivot ≤ a[p+1:hi+1].
func partition[T any](a []T, lo, hi int, less func(a, b T) bool) int {
	pivot := a[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if less(a[j], pivot) {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[hi] = a[hi], a[i+1]

	return i + 1
}
