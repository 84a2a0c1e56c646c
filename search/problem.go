package search

import "fmt"

// Base provides the default goal and cost behavior of the problem contract
// so concrete formulations only implement what differs. Embed it by value
// and construct it with NewBase or NewGoalBase:
//
//	type routing struct {
//	    search.Base[city, road]
//	}
//
// Base supplies Initial, GoalTest (equality with the stored goal) and
// PathCost (unit cost per step). Successors has no sensible default, so the
// compiler enforces that every formulation provides it. Formulations
// without an explicit goal state must override GoalTest: without one the
// default never holds.
type Base[S comparable, A comparable] struct {
	initial S
	goal    S
	hasGoal bool
}

// NewBase returns a Base holding only an initial state. The default
// GoalTest reports false for every state until overridden.
func NewBase[S comparable, A comparable](initial S) Base[S, A] {
	return Base[S, A]{initial: initial}
}

// NewGoalBase returns a Base holding an initial state and an explicit goal
// state for the default equality goal test.
func NewGoalBase[S comparable, A comparable](initial, goal S) Base[S, A] {
	return Base[S, A]{initial: initial, goal: goal, hasGoal: true}
}

// Initial returns the state the search starts from.
func (b Base[S, A]) Initial() S { return b.initial }

// Goal returns the stored goal state and whether one was set.
func (b Base[S, A]) Goal() (S, bool) { return b.goal, b.hasGoal }

// GoalTest compares s with the stored goal by equality. Formulations with a
// predicate goal ("no collectibles remain") override this.
func (b Base[S, A]) GoalTest(s S) bool { return b.hasGoal && s == b.goal }

// PathCost charges one unit per step regardless of the edge taken.
func (b Base[S, A]) PathCost(c float64, _ S, _ A, _ S) float64 { return c + 1 }

// Actions returns the actions available from s, in successor order. It is
// a pure view over one Successors call.
func Actions[S comparable, A comparable](p Problem[S, A], s S) []A {
	succ := p.Successors(s)
	if len(succ) == 0 {
		return nil
	}
	acts := make([]A, len(succ))
	for i, sc := range succ {
		acts[i] = sc.Action
	}

	return acts
}

// Result returns the state reached by taking a from s. It is a pure view
// over one Successors call; an action absent from the successor mapping
// yields ErrActionNotFound.
func Result[S comparable, A comparable](p Problem[S, A], s S, a A) (S, error) {
	for _, sc := range p.Successors(s) {
		if sc.Action == a {
			return sc.State, nil
		}
	}
	var zero S

	return zero, fmt.Errorf("%w: %v from %v", ErrActionNotFound, a, s)
}

// Value reports the scalar quality of s for optimization-style use. The
// capability is asserted at this boundary: formulations that do not
// implement Valuer yield ErrNotImplemented.
func Value[S comparable, A comparable](p Problem[S, A], s S) (float64, error) {
	v, ok := p.(Valuer[S])
	if !ok {
		return 0, fmt.Errorf("%w: %T provides no Value", ErrNotImplemented, p)
	}

	return v.Value(s), nil
}
