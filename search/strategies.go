package search

import "github.com/katalvlaran/statespace/frontier"

// stateOf keys frontier membership by the node's state, so two nodes
// wrapping equal states are one member regardless of how they were reached.
func stateOf[S comparable, A comparable](n *Node[S, A]) S { return n.State() }

// Compile-time checks that every frontier container satisfies Frontier
// when its element is *Node and its identity key is the node state.
var (
	_ Frontier[int, string] = (*frontier.Stack[*Node[int, string], int])(nil)
	_ Frontier[int, string] = (*frontier.Queue[*Node[int, string], int])(nil)
	_ Frontier[int, string] = (*frontier.PriorityQueue[*Node[int, string], int])(nil)
)

// BreadthFirstSearch runs GraphSearch over p with a FIFO frontier:
// shallowest nodes expand first, so the first goal found lies at minimal
// depth. A nil opts means DefaultOptions.
func BreadthFirstSearch[S comparable, A comparable](p Problem[S, A], opts *Options[S, A]) (*Node[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	q, err := frontier.NewQueue[*Node[S, A], S](stateOf[S, A])
	if err != nil {
		return nil, err
	}

	return GraphSearch(p, q, opts)
}

// DepthFirstSearch runs GraphSearch over p with a LIFO frontier: the most
// recently generated node expands first, diving along one branch before
// backtracking. Depth-first finds a goal, not the shallowest one. A nil
// opts means DefaultOptions.
func DepthFirstSearch[S comparable, A comparable](p Problem[S, A], opts *Options[S, A]) (*Node[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	s, err := frontier.NewStack[*Node[S, A], S](stateOf[S, A])
	if err != nil {
		return nil, err
	}

	return GraphSearch(p, s, opts)
}
