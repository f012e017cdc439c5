// Package fibonacci computes Fibonacci numbers with explicit memoization.
//
// Definition:
//
//	fib(0) = 0, fib(1) = 1, fib(n) = fib(n-1) + fib(n-2)
//
// Three entry points:
//
//   - Fib(n)        — memoized, one fresh cache per call. Every distinct
//     subproblem is computed exactly once: O(n) time, O(n) cache space.
//   - Memo / NewMemo — the same computation over a caller-owned cache that
//     survives across calls, for workloads that ask for many values. The
//     cache is explicit state with single-writer discipline: it is not
//     internally locked, so share it across goroutines only under your own
//     synchronization (or give each goroutine its own Memo).
//   - Naive(n)      — the textbook double recursion, O(2ⁿ) time. Kept as the
//     reference implementation the memoized form is cross-checked against;
//     unusable beyond small n.
//
// Errors (sentinel):
//
//   - ErrNegativeInput — n < 0. Callers must not proceed on this result.
//   - ErrOverflow      — n > 93; fib(94) exceeds the uint64 range.
//
// Example usage:
//
//	v, err := fibonacci.Fib(10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v) // 55
package fibonacci
