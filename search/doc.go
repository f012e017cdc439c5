// Package search provides generic linear and binary search over slices.
//
// Overview:
//
//   - Linear scans every element once, in order, and needs no precondition.
//   - Binary repeatedly halves a sorted interval and finds the target in
//     O(log n) comparisons; the input must already be sorted ascending by
//     the same ordering used for comparison.
//   - BinaryFunc is Binary under a caller-supplied three-way comparator,
//     for element types without a built-in order.
//
// Both searches report absence with the NotFound sentinel index — a normal
// outcome, never an error. Passing an unsorted slice to Binary is undefined
// behavior: the result is unspecified (typically NotFound or a wrong index),
// and it is never detected or reported.
//
// Complexity:
//
//	Linear      — Time O(n),     Space O(1)
//	Binary      — Time O(log n), Space O(1)
//	BinaryFunc  — Time O(log n), Space O(1)
//
// Example usage:
//
//	seq := []int{2, 3, 5, 8, 13}
//	if i := search.Binary(seq, 8); i != search.NotFound {
//	    fmt.Println("found at", i) // found at 3
//	}
package search
