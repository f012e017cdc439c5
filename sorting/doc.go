// Package sorting provides the five classic comparison sorts, generic over
// any ordered element type.
//
// Every sort is pure: the input slice is never mutated, and a freshly
// allocated sorted slice is returned. Empty and singleton inputs come back
// unchanged (as fresh copies). Each algorithm also has a Func variant taking
// a strict less(a, b) predicate, for element types without a built-in order.
//
// Choosing an algorithm:
//
//	             Best        Average     Worst       Stable  Extra space
//	Insertion    O(n)        O(n²)       O(n²)       yes     O(n) (the copy)
//	Bubble       O(n)        O(n²)       O(n²)       yes     O(n) (the copy)
//	Selection    O(n²)       O(n²)       O(n²)       no      O(n) (the copy)
//	Merge        O(n log n)  O(n log n)  O(n log n)  yes     O(n) merge buffer
//	Quick        O(n log n)  O(n log n)  O(n²)       no      O(log n) recursion
//
// Stability means equal elements keep their relative input order. Selection
// minimizes swaps (at most n-1). Quick uses the last element as pivot with
// Lomuto partitioning, so already-sorted input is its worst case.
//
// Sorting never fails: any well-formed total order yields a sorted result,
// so no function in this package returns an error.
//
// Example usage:
//
//	sorted := sorting.Merge([]int{5, 2, 4, 1, 3}) // [1 2 3 4 5]
package sorting
