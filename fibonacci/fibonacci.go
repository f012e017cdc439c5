package fibonacci

import "errors"

// Sentinel errors for Fibonacci input validation.
var (
	// ErrNegativeInput indicates that a negative n was supplied.
	ErrNegativeInput = errors.New("fibonacci: n must be non-negative")

	// ErrOverflow indicates that fib(n) does not fit in a uint64.
	ErrOverflow = errors.New("fibonacci: result exceeds uint64 range")
)

// maxN is the largest n with fib(n) representable in a uint64.
const maxN = 93

// Fib returns fib(n) using a fresh memoization cache for this call.
//
// Each distinct subproblem is computed exactly once.
// Complexity: O(n) time, O(n) cache space.
func Fib(n int) (uint64, error) {
	return NewMemo().Fib(n)
}

// Memo is a cross-call Fibonacci cache. It is caller-owned state: construct
// it with NewMemo, keep it as long as useful, and do not share it across
// goroutines without external synchronization (single-writer discipline).
type Memo struct {
	cache map[int]uint64
}

// NewMemo returns a Memo seeded with the fib(0) and fib(1) base cases.
func NewMemo() *Memo {
	return &Memo{cache: map[int]uint64{0: 0, 1: 1}}
}

// Fib returns fib(n), reusing every previously cached subproblem and caching
// every new one. Amortized over a Memo's lifetime, each distinct n is
// computed at most once.
func (m *Memo) Fib(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxN {
		return 0, ErrOverflow
	}

	return m.fib(n), nil
}

// fib is the cached recursion; n is validated by the caller.
// Depth is bounded by maxN, well within stack limits.
func (m *Memo) fib(n int) uint64 {
	if v, ok := m.cache[n]; ok {
		return v
	}
	v := m.fib(n-1) + m.fib(n-2)
	m.cache[n] = v

	return v
}

// Naive returns fib(n) by the unmemoized double recursion.
//
// Complexity: O(2ⁿ) time — it exists as the reference the memoized form is
// tested against, and becomes impractical past n ≈ 40.
func Naive(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegativeInput
	}
	if n > maxN {
		return 0, ErrOverflow
	}

	return naive(n), nil
}

func naive(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}

	return naive(n-1) + naive(n-2)
}
