// Package snake formulates a snake-rescue grid puzzle as a search problem:
// a snake-like body on a bounded W×H grid must collect every apple without
// leaving the grid or colliding with an obstacle or its own body.
//
// What
//
//   - Puzzle satisfies the search problem contract over (State, Move), so
//     any frontier strategy can drive it unchanged.
//   - State is a comparable value: body segments head first, the heading,
//     the remaining apples, and the obstacles, all canonically encoded so
//     equal configurations compare and hash equal.
//   - Moves are Forward, TurnLeft, TurnRight (turn a quarter, then step).
//     Successor generation offers them in exactly that order.
//   - Stepping onto an apple grows the body by one segment and removes the
//     apple; any other step drops the tail. The goal is reached when no
//     apples remain.
//   - Collisions are strict: the target cell may not hold an obstacle or
//     any body segment, the tail included, even though the tail vacates
//     its cell on the same step.
//   - Parse reads a rune-grid board; Render draws one back; FormatPlan
//     names a move sequence.
//
// Board alphabet
//
//	#  obstacle   .  empty   *  apple   o  body segment
//	^ v < >  the head, facing up, down, left or right
//
// Why
//
//	The puzzle exercises every part of the engine on a space that is small
//	to describe and expensive to explore: positions × headings × collected
//	subsets. Breadth-first over it returns a shortest move plan.
//
// Determinism
//
//	Successor order is fixed (Forward, TurnLeft, TurnRight) and apples are
//	kept canonically sorted, so identical boards always explore and solve
//	identically.
//
// Complexity
//
//	Successor generation is O(body + apples) per state. The state space is
//	bounded by W×H positions per segment times 4 headings times 2^apples
//	subsets; search memory grows with the frontier and closed set.
//
// Usage
//
//	p, err := snake.Parse([]string{
//	    "....*",
//	    ".oo^.",
//	    "..#..",
//	})
//	if err != nil { /* malformed board */ }
//
//	goal, err := search.BreadthFirstSearch[snake.State, snake.Move](p, nil)
//	if errors.Is(err, search.ErrNoSolution) { /* apples unreachable */ }
//	fmt.Println(snake.FormatPlan(goal.Solution()))
//
// Errors
//
//   - ErrBadBounds, ErrBadHeading, ErrNoBody, ErrCellOutOfBounds,
//     ErrCellConflict, ErrBodyDisjoint  from New.
//   - ErrEmptyGrid, ErrNonRectangular, ErrNoHead, ErrMultipleHeads,
//     ErrBadRune, ErrAmbiguousBody  from Parse (plus any New error).
package snake
