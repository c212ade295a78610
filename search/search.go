package search

import (
	"errors"
	"fmt"
)

// ErrNodeLimit is returned when a search visits more positions than allowed.
var ErrNodeLimit = errors.New("search node limit reached")

// Minimax returns the fixed-depth minimax value of node. The perspective
// flips on every ply whatever the number of players, so with more than two
// seats all opponents act as one minimizer. A negative depth is treated as 0.
func Minimax[T Node[T]](node T, depth int, maximizing bool) int {
	if depth <= 0 {
		return node.Eval()
	}
	children := node.Next()
	if len(children) == 0 {
		return node.Eval()
	}

	best := Minimax(children[0], depth-1, !maximizing)
	for _, child := range children[1:] {
		value := Minimax(child, depth-1, !maximizing)
		if (maximizing && value > best) || (!maximizing && value < best) {
			best = value
		}
	}
	return best
}

// Search picks the root successor with the best minimax value. Ties go to
// the first successor. With depth 0 or no successors, Index is -1 and Value
// is the root evaluation.
func Search[T Node[T]](root T, params Params) (Result[T], error) {
	if params.Depth < 0 {
		return Result[T]{Index: -1}, fmt.Errorf("negative search depth %d", params.Depth)
	}

	s := &searcher[T]{limit: params.NodeLimit}
	result := Result[T]{Index: -1}

	if err := s.visit(); err != nil {
		return result, err
	}
	var children []T
	if params.Depth > 0 {
		children = root.Next()
	}
	if len(children) == 0 {
		result.Value = root.Eval()
		result.Nodes = s.nodes
		return result, nil
	}

	for i, child := range children {
		value, err := s.minimax(child, params.Depth-1, !params.Maximizing)
		if err != nil {
			result.Nodes = s.nodes
			return result, err
		}
		if result.Index < 0 ||
			(params.Maximizing && value > result.Value) ||
			(!params.Maximizing && value < result.Value) {
			result.Best = child
			result.Index = i
			result.Value = value
		}
	}
	result.Nodes = s.nodes
	return result, nil
}

// searcher is Minimax with a visit counter.
type searcher[T Node[T]] struct {
	limit int
	nodes int
}

func (s *searcher[T]) visit() error {
	s.nodes++
	if s.limit > 0 && s.nodes > s.limit {
		return fmt.Errorf("%w: %d", ErrNodeLimit, s.limit)
	}
	return nil
}

func (s *searcher[T]) minimax(node T, depth int, maximizing bool) (int, error) {
	if err := s.visit(); err != nil {
		return 0, err
	}
	if depth == 0 {
		return node.Eval(), nil
	}
	children := node.Next()
	if len(children) == 0 {
		return node.Eval(), nil
	}

	var best int
	for i, child := range children {
		value, err := s.minimax(child, depth-1, !maximizing)
		if err != nil {
			return 0, err
		}
		if i == 0 || (maximizing && value > best) || (!maximizing && value < best) {
			best = value
		}
	}
	return best, nil
}
