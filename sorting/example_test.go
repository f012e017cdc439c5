// Package sorting_test provides runnable examples for the sorting functions.
package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/sorting"
)

// ExampleMerge sorts integers; the input slice is left untouched.
func ExampleMerge() {
	in := []int{5, 2, 4, 1, 3}
	out := sorting.Merge(in)

	fmt.Println("in: ", in)
	fmt.Println("out:", out)
	// Output:
	// in:  [5 2 4 1 3]
	// out: [1 2 3 4 5]
}

// ExampleInsertionFunc sorts structs by a caller-supplied order and keeps
// equal keys in their original relative order (stability).
func ExampleInsertionFunc() {
	type player struct {
		score int
		name  string
	}
	players := []player{
		{score: 30, name: "ada"},
		{score: 10, name: "bob"},
		{score: 30, name: "cyd"},
	}

	byScore := sorting.InsertionFunc(players, func(a, b player) bool {
		return a.score < b.score
	})
	for _, p := range byScore {
		fmt.Println(p.score, p.name)
	}
	// Output:
	// 10 bob
	// 30 ada
	// 30 cyd
}

// ExampleBubble shows the early-exit pass on already-sorted input.
func ExampleBubble() {
	fmt.Println(sorting.Bubble([]string{"a", "b", "c"}))
	// Output: [a b c]
}
