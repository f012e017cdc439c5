package sorting

import "cmp"

// Merge sorts seq ascending by merge sort and returns a new slice.
//
// The slice is halved recursively, each half sorted, and the two sorted runs
// merged by repeated min-extraction. Ties are taken from the left run first,
// which makes the sort stable.
//
// Complexity: O(n log n) in every case; O(n) auxiliary space for merge
// buffers.
func Merge[T cmp.Ordered](seq []T) []T {
	return MergeFunc(seq, ascending[T])
}

// MergeFunc is Merge under a caller-supplied strict less predicate.
func MergeFunc[T any](seq []T, less func(a, b T) bool) []T {
	if len(seq) <= 1 {
		return clone(seq)
	}

	mid := len(seq) / 2
	left := MergeFunc(seq[:mid], less)
	right := MergeFunc(seq[mid:], less)

	return merge(left, right, less)
}

// merge interleaves two sorted runs into one sorted slice.
// When neither head is strictly smaller, the left head wins (stability).
func merge[T any](left, right []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out = append(out, right[j])
			j++
		} else {
			out = append(out, left[i])
			i++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
