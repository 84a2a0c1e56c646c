package snake

import (
	"fmt"

	"github.com/katalvlaran/statespace/search"
)

// Puzzle formulates the snake rescue on a bounded grid: a body of one or
// more segments must collect every apple without leaving the grid or
// colliding with an obstacle or with itself. Puzzle is immutable once
// built and satisfies the search problem contract over State and Move, so
// any strategy can drive it. Path cost is one unit per move.
type Puzzle struct {
	search.Base[State, Move]

	// Width and Height are the grid bounds.
	Width, Height int

	blocked map[Cell]bool
}

var _ search.Problem[State, Move] = (*Puzzle)(nil)

// New constructs a Puzzle from explicit placements. body lists the
// segments head first and must form a connected chain of distinct cells;
// apples and obstacles must not touch the body or each other.
// Returns ErrBadBounds, ErrBadHeading, ErrNoBody, ErrCellOutOfBounds,
// ErrCellConflict, or ErrBodyDisjoint on invalid input.
// Complexity: O(body + apples + obstacles).
func New(width, height int, body []Cell, heading Heading, apples, obstacles []Cell) (*Puzzle, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadBounds
	}
	if heading > Left {
		return nil, ErrBadHeading
	}
	if len(body) == 0 {
		return nil, ErrNoBody
	}

	p := &Puzzle{Width: width, Height: height, blocked: make(map[Cell]bool, len(obstacles))}

	// Every placed object claims exactly one free in-bounds cell.
	occupied := make(map[Cell]bool, len(body)+len(apples)+len(obstacles))
	claim := func(kind string, cells []Cell) error {
		for _, c := range cells {
			if !p.InBounds(c) {
				return fmt.Errorf("%w: %s at %v", ErrCellOutOfBounds, kind, c)
			}
			if occupied[c] {
				return fmt.Errorf("%w: %s at %v", ErrCellConflict, kind, c)
			}
			occupied[c] = true
		}

		return nil
	}
	if err := claim("body segment", body); err != nil {
		return nil, err
	}
	if err := claim("apple", apples); err != nil {
		return nil, err
	}
	if err := claim("obstacle", obstacles); err != nil {
		return nil, err
	}

	for i := 1; i < len(body); i++ {
		if manhattan(body[i-1], body[i]) != 1 {
			return nil, fmt.Errorf("%w: segment %v does not touch %v", ErrBodyDisjoint, body[i], body[i-1])
		}
	}
	for _, c := range obstacles {
		p.blocked[c] = true
	}

	// Canonical cell order makes equal configurations encode equally.
	sortedApples := append([]Cell(nil), apples...)
	sortCells(sortedApples)
	sortedObstacles := append([]Cell(nil), obstacles...)
	sortCells(sortedObstacles)

	p.Base = search.NewBase[State, Move](State{
		body:      encodeCells(body),
		heading:   heading,
		apples:    encodeCells(sortedApples),
		obstacles: encodeCells(sortedObstacles),
	})

	return p, nil
}

// InBounds reports whether c lies within the grid boundaries.
func (p *Puzzle) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < p.Width && c.Y >= 0 && c.Y < p.Height
}

// GoalTest reports whether every apple has been collected.
func (p *Puzzle) GoalTest(s State) bool { return s.apples == "" }

// Successors generates the legal moves from s in the fixed order Forward,
// TurnLeft, TurnRight. A move is legal when the stepped-to cell lies in
// bounds and holds neither an obstacle nor a body segment; the tail cell
// counts as a collision even though the tail vacates it on the same step.
// Stepping onto an apple grows the body by one segment and removes the
// apple; any other step drops the tail.
func (p *Puzzle) Successors(s State) []search.Successor[State, Move] {
	body := decodeCells(s.body)
	apples := decodeCells(s.apples)
	head := body[0]

	succ := make([]search.Successor[State, Move], 0, 3)
	for m := Forward; m <= TurnRight; m++ {
		h := s.heading
		switch m {
		case TurnLeft:
			h = h.TurnLeft()
		case TurnRight:
			h = h.TurnRight()
		}
		dx, dy := h.Delta()
		next := Cell{X: head.X + dx, Y: head.Y + dy}
		if !p.InBounds(next) || p.blocked[next] || contains(body, next) {
			continue
		}

		ns := State{heading: h, obstacles: s.obstacles}
		if contains(apples, next) {
			ns.body = encodeCells(append([]Cell{next}, body...))
			ns.apples = encodeCells(without(apples, next))
		} else {
			ns.body = encodeCells(append([]Cell{next}, body[:len(body)-1]...))
			ns.apples = s.apples
		}
		succ = append(succ, search.Successor[State, Move]{Action: m, State: ns})
	}

	return succ
}

// manhattan is the L1 distance between two cells.
func manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// contains reports whether cells holds c. Bodies stay short, so a linear
// scan beats building a per-state set.
func contains(cells []Cell, c Cell) bool {
	for _, o := range cells {
		if o == c {
			return true
		}
	}

	return false
}

// without returns cells minus c, preserving order.
func without(cells []Cell, c Cell) []Cell {
	out := make([]Cell, 0, len(cells)-1)
	for _, o := range cells {
		if o != c {
			out = append(out, o)
		}
	}

	return out
}
