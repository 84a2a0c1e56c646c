package search

import (
	"context"
	"fmt"
)

// closedSet records the identities of nodes already expanded. Membership
// keys default to the node state itself; an Options.VisitedKey override
// redirects membership to any derived comparable key.
type closedSet[S comparable, A comparable] struct {
	states map[S]struct{}
	keys   map[any]struct{}
	keyFn  func(*Node[S, A]) any
}

func newClosedSet[S comparable, A comparable](keyFn func(*Node[S, A]) any) *closedSet[S, A] {
	cs := &closedSet[S, A]{keyFn: keyFn}
	if keyFn == nil {
		cs.states = make(map[S]struct{})
	} else {
		cs.keys = make(map[any]struct{})
	}

	return cs
}

// seen reports whether a node with n's identity was already expanded.
func (cs *closedSet[S, A]) seen(n *Node[S, A]) bool {
	if cs.keyFn == nil {
		_, ok := cs.states[n.State()]

		return ok
	}
	_, ok := cs.keys[cs.keyFn(n)]

	return ok
}

// add marks n's identity as expanded.
func (cs *closedSet[S, A]) add(n *Node[S, A]) {
	if cs.keyFn == nil {
		cs.states[n.State()] = struct{}{}

		return
	}
	cs.keys[cs.keyFn(n)] = struct{}{}
}

// GraphSearch drives p toward a goal using f as the open list, expanding
// each distinct state at most once. The loop is the classic one: pop a
// node, goal-test it, skip it if its state was expanded before, otherwise
// expand it and push the children. Which node pops next is entirely f's
// business, so the same driver serves breadth-first, depth-first, and any
// priority-ordered strategy.
//
// Exploration order is fully determined by f's discipline and the order
// Successors yields children, so repeated runs over a deterministic
// formulation reproduce the same result.
//
// On success the returned node carries the goal state; its Solution, Path,
// and States methods reconstruct the route. Exhausting the frontier is the
// normal negative outcome and is reported as ErrNoSolution. A nil opts
// means DefaultOptions. Returns ErrNilProblem or ErrNilFrontier for
// invalid input, ErrLimitReached when the expansion ceiling is hit, and
// the context's error on cancellation.
func GraphSearch[S comparable, A comparable](p Problem[S, A], f Frontier[S, A], opts *Options[S, A]) (*Node[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if f == nil {
		return nil, ErrNilFrontier
	}
	o := DefaultOptions[S, A]()
	if opts != nil {
		o = *opts
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	closed := newClosedSet[S, A](o.VisitedKey)
	f.Append(Root[S, A](p.Initial()))

	expanded := 0
	for {
		// cancellation check (once per loop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		n, ok := f.Pop()
		if !ok {
			return nil, fmt.Errorf("%w after %d expansions", ErrNoSolution, expanded)
		}
		if o.OnPop != nil {
			o.OnPop(n)
		}

		// Goal-test on pop, not on generation, so strategies that order by
		// cost remain free to find a better route to a queued goal state.
		if p.GoalTest(n.State()) {
			return n, nil
		}
		if closed.seen(n) {
			continue
		}
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return nil, fmt.Errorf("%w: %d", ErrLimitReached, expanded)
		}
		closed.add(n)
		expanded++

		children := n.Expand(p)
		if o.OnExpand != nil {
			o.OnExpand(n, children)
		}
		f.Extend(children)
	}
}
