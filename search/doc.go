// Package search provides a strategy-agnostic state-space search engine:
// a Problem contract for formulations, path-tracking Nodes, a duplicate-
// suppressing GraphSearch driver, and ready-made breadth-first and
// depth-first strategies built on the containers in package frontier.
//
// What
//
//   - Problem[S, A]: the capability contract a formulation satisfies.
//     States S and actions A are opaque comparable types; the engine only
//     calls Initial, Successors, GoalTest, and PathCost.
//   - Base[S, A]: embeddable defaults (equality goal test against a stored
//     goal state, unit step cost) so formulations implement only what
//     differs.
//   - Node[S, A]: immutable search-tree bookkeeping. Each node records its
//     state, parent, producing action, accumulated path cost, and depth;
//     Solution, Path, and States reconstruct the route by walking parent
//     links back to the root.
//   - GraphSearch: the driver loop. Pops from a caller-supplied Frontier,
//     goal-tests, expands each distinct state at most once, and pushes
//     children. Strategy lives entirely in the frontier's pop order.
//   - BreadthFirstSearch / DepthFirstSearch: GraphSearch pre-wired with a
//     FIFO or LIFO frontier keyed on node state.
//   - Actions, Result, Value: derived views over a formulation, for callers
//     that want the classic action-list / transition / objective shape.
//
// Why
//
//	One driver, many behaviors. Uninformed and informed search differ only
//	in which node leaves the open list next, so the driver takes the open
//	list as an interface and never inspects order. New strategies are new
//	frontiers, not new loops.
//
// Determinism
//
//	Successors returns an ordered slice and GraphSearch expands children in
//	exactly that order, so repeated runs over a deterministic formulation
//	visit the same nodes in the same order and return the same result.
//
// Complexity (b = branching factor, d = solution depth, V = distinct states)
//
//   - Time:   O(V · b) state expansions in the worst case; each distinct
//     state is expanded at most once.
//   - Memory: O(V) for the closed set plus the frontier's footprint
//     (breadth-first O(b^d) worst case, depth-first O(b·d)).
//
// Usage
//
//	type chain struct {
//	    search.Base[int, string]
//	}
//
//	func (chain) Successors(s int) []search.Successor[int, string] {
//	    if s >= 5 {
//	        return nil
//	    }
//	    return []search.Successor[int, string]{{Action: "next", State: s + 1}}
//	}
//
//	p := chain{Base: search.NewGoalBase[int, string](0, 5)}
//	goal, err := search.BreadthFirstSearch[int, string](p, nil)
//	if err != nil {
//	    // ErrNoSolution when the space is exhausted, ErrLimitReached when
//	    // Options.MaxExpansions was hit, or the context's error.
//	}
//	plan := goal.Solution() // ["next", "next", "next", "next", "next"]
//
// Options
//
//	GraphSearch and the strategy wrappers take a *Options; nil selects
//	DefaultOptions (background context, no expansion ceiling, no hooks,
//	state-keyed deduplication).
//
//   - Ctx:           context for cancellation, checked once per iteration.
//   - MaxExpansions: abort with ErrLimitReached after this many expansions.
//   - OnPop:         hook for every node leaving the frontier.
//   - OnExpand:      hook for every expansion, with the children in order.
//   - VisitedKey:    override the closed-set identity of a node.
//
// Errors
//
//   - ErrNilProblem / ErrNilFrontier  for nil inputs to the driver.
//   - ErrNoSolution                   when the frontier empties without a goal.
//   - ErrLimitReached                 when the MaxExpansions ceiling is hit.
//   - ErrActionNotFound               from Result, for an unavailable action.
//   - ErrNotImplemented               from Value, for formulations without Valuer.
//
// ErrNoSolution is an outcome, not a fault: callers distinguish "searched
// and found nothing" from real failures with errors.Is.
package search
