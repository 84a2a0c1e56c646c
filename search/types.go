// Package search defines the problem contract, option types, and sentinel
// errors for the state-space search engine.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned if a nil problem is passed to the driver.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilFrontier is returned if a nil frontier is passed to the driver.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrNoSolution is the normal outcome of exhausting the reachable state
	// space without finding a goal. It signals "no result", not a fault:
	// check with errors.Is and treat like sql.ErrNoRows.
	ErrNoSolution = errors.New("search: no solution found")

	// ErrNotImplemented is returned when an optional problem capability
	// (such as Value) is invoked on a formulation that does not provide it.
	ErrNotImplemented = errors.New("search: not implemented")

	// ErrActionNotFound is returned by Result when the requested action is
	// not available from the given state.
	ErrActionNotFound = errors.New("search: action not available")

	// ErrLimitReached is returned when the MaxExpansions ceiling is hit
	// before a goal is found or the space is exhausted.
	ErrLimitReached = errors.New("search: expansion limit reached")
)

// Successor pairs one available action with the state it leads to. A slice
// of Successor is an ordered action→state mapping: the engine expands
// children in exactly this order, which is what makes exploration
// deterministic for deterministic formulations.
type Successor[S comparable, A comparable] struct {
	Action A
	State  S
}

// Problem is the capability contract a concrete formulation must satisfy.
// The engine only ever queries a Problem; it never mutates one, so a single
// value may serve any number of concurrent searches.
//
// Successors must be pure, deterministic, and total over valid states;
// states with no available transitions return an empty slice. Equal states
// must always compare equal (S is the dedup key of the closed set).
// PathCost receives the cost c already accrued to reach from, and returns
// the total cost of reaching to via a.
type Problem[S comparable, A comparable] interface {
	Initial() S
	Successors(s S) []Successor[S, A]
	GoalTest(s S) bool
	PathCost(c float64, from S, via A, to S) float64
}

// Valuer is the optional optimization-variant capability: a scalar measure
// of state quality. GraphSearch never calls it; the Value helper asserts it
// at the call boundary and surfaces ErrNotImplemented when absent.
type Valuer[S comparable] interface {
	Value(s S) float64
}

// Frontier is the open-list contract the driver consumes: a mutable ordered
// multiset of nodes whose pop order determines the exploration strategy.
// The containers in package frontier satisfy it when their element type is
// *Node[S, A] and their identity key is the node state.
type Frontier[S comparable, A comparable] interface {
	Append(n *Node[S, A])
	Extend(ns []*Node[S, A])
	Pop() (*Node[S, A], bool)
	Len() int
	Contains(n *Node[S, A]) bool
}

// Options holds the tunable parameters of one GraphSearch call. The zero
// value (or a nil *Options) means: background context, no expansion
// ceiling, no hooks, and state-keyed deduplication.
type Options[S comparable, A comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per loop
	// iteration. Nil means context.Background().
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrLimitReached once
	// this many nodes have been expanded. 0 disables the ceiling.
	MaxExpansions int

	// OnPop is called for every node removed from the frontier, before the
	// goal test.
	OnPop func(n *Node[S, A])

	// OnExpand is called after a node is expanded, with its children in
	// generation order and before they join the frontier.
	OnExpand func(parent *Node[S, A], children []*Node[S, A])

	// VisitedKey overrides the closed-set identity of a node. The default
	// keys on the node state alone; formulations needing path-sensitive
	// identity may derive a key from any of the node's bookkeeping. The
	// returned value must be comparable.
	VisitedKey func(n *Node[S, A]) any
}

// DefaultOptions returns the zero policy: background context, no ceiling,
// no hooks, state-keyed deduplication.
func DefaultOptions[S comparable, A comparable]() Options[S, A] {
	return Options[S, A]{Ctx: context.Background()}
}
