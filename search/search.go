package search

import "cmp"

// NotFound is the index reported when the target is absent from the sequence.
const NotFound = -1

// Linear scans seq front to back and returns the index of the first element
// equal to target, or NotFound. The sequence may be in any order.
//
// Complexity: O(n) time, O(1) space.
func Linear[T comparable](seq []T, target T) int {
	for i, v := range seq {
		if v == target {
			return i
		}
	}

	return NotFound
}

// Binary locates target in a slice sorted ascending and returns an index i
// with seq[i] == target, or NotFound when the target is absent.
// Which index is returned among equal elements is unspecified.
//
// Precondition: seq is sorted ascending. Violating it yields an unspecified
// result, not an error.
//
// Complexity: O(log n) time, O(1) space.
func Binary[T cmp.Ordered](seq []T, target T) int {
	return BinaryFunc(seq, target, cmp.Compare[T])
}

// BinaryFunc is Binary under a caller comparator: compare(a, b) must return a
// negative value when a < b, zero when a == b, and a positive value when
// a > b, and seq must be sorted ascending by that same comparator.
//
// Complexity: O(log n) time, O(1) space.
func BinaryFunc[T any](seq []T, target T, compare func(a, b T) int) int {
	low, high := 0, len(seq)-1
	for low <= high {
		// Midpoint without overflow; floor of (low+high)/2.
		mid := low + (high-low)/2
		switch c := compare(seq[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return NotFound
}
