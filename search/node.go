// Package search explores game trees built from successor states.
package search

// Node is a position the search can expand and score. Next must not
// mutate the receiver: sibling subtrees are explored from the same node.
type Node[T any] interface {
	// Next returns every successor, in a stable order.
	Next() []T
	// Eval scores the position for the player to move.
	Eval() int
}

// Params bounds a root search.
type Params struct {
	Depth      int
	Maximizing bool
	// NodeLimit caps the number of positions visited (0 = unlimited).
	NodeLimit int
}

// Result is the outcome of a root search.
type Result[T any] struct {
	Best  T
	Index int // index of Best among the root successors, -1 if none
	Value int
	Nodes int // positions visited, root included
}
