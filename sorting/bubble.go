package sorting

import "cmp"

// Bubble sorts seq ascending by bubble sort and returns a new slice.
//
// Each pass compares adjacent pairs and swaps out-of-order ones, floating the
// largest remaining element to the end. A pass with zero swaps proves the
// slice sorted, so the loop exits early. Stable.
//
// Complexity: O(n) best (already sorted, one clean pass), O(n²)
// average/worst; O(n) space for the returned copy.
func Bubble[T cmp.Ordered](seq []T) []T {
	return BubbleFunc(seq, ascending[T])
}

// BubbleFunc is Bubble under a caller-supplied strict less predicate.
func BubbleFunc[T any](seq []T, less func(a, b T) bool) []T {
	out := clone(seq)
	for end := len(out) - 1; end > 0; end-- {
		swapped := false
		for j := 0; j < end; j++ {
			// Swap only on strict inversion, so equal elements never cross.
			if less(out[j+1], out[j]) {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out
}
