// Package snake defines core types and sentinel errors for the snake
// puzzle formulation.
package snake

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for puzzle construction and grid parsing.
var (
	// ErrBadBounds indicates a grid narrower or shorter than one cell.
	ErrBadBounds = errors.New("snake: grid bounds must be at least 1x1")
	// ErrBadHeading indicates a heading outside Up/Right/Down/Left.
	ErrBadHeading = errors.New("snake: heading must be Up, Right, Down or Left")
	// ErrNoBody indicates an empty body.
	ErrNoBody = errors.New("snake: body must have at least one segment")
	// ErrCellOutOfBounds indicates a body, apple, or obstacle cell outside the grid.
	ErrCellOutOfBounds = errors.New("snake: cell outside grid bounds")
	// ErrCellConflict indicates two objects placed on the same cell.
	ErrCellConflict = errors.New("snake: cell occupied by more than one object")
	// ErrBodyDisjoint indicates body segments that do not form one connected chain.
	ErrBodyDisjoint = errors.New("snake: body segments must form a connected chain")

	// ErrEmptyGrid indicates a parsed grid with no rows or no columns.
	ErrEmptyGrid = errors.New("snake: grid must have at least one row and one column")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("snake: all grid rows must have the same length")
	// ErrNoHead indicates a parsed grid without a head rune.
	ErrNoHead = errors.New("snake: grid has no head (^, v, < or >)")
	// ErrMultipleHeads indicates a parsed grid with more than one head rune.
	ErrMultipleHeads = errors.New("snake: grid has more than one head")
	// ErrBadRune indicates an unrecognized rune in a parsed grid.
	ErrBadRune = errors.New("snake: unrecognized grid rune")
	// ErrAmbiguousBody indicates body segments that admit more than one chain
	// order behind the head.
	ErrAmbiguousBody = errors.New("snake: body order is ambiguous")
)

// Cell addresses one grid square: X is the column, Y the row, origin at the
// top-left corner.
type Cell struct {
	X, Y int
}

// String renders the cell as "x,y".
func (c Cell) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Heading is the direction the head faces, clockwise from Up. Y grows
// downward, so Up decrements Y.
type Heading uint8

const (
	// Up faces the top edge of the grid.
	Up Heading = iota
	// Right faces the right edge.
	Right
	// Down faces the bottom edge.
	Down
	// Left faces the left edge.
	Left
)

// Delta returns the unit step in heading direction.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// TurnLeft returns the heading after a quarter turn counterclockwise.
func (h Heading) TurnLeft() Heading { return (h + 3) % 4 }

// TurnRight returns the heading after a quarter turn clockwise.
func (h Heading) TurnRight() Heading { return (h + 1) % 4 }

// Rune returns the board rune for a head facing h.
func (h Heading) Rune() rune {
	switch h {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	default:
		return '?'
	}
}

// String names the heading.
func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
}

// Move is one action available to the snake. Successor generation offers
// moves in declaration order: Forward, TurnLeft, TurnRight.
type Move uint8

const (
	// Forward steps one cell in the current heading.
	Forward Move = iota
	// TurnLeft rotates the heading counterclockwise, then steps.
	TurnLeft
	// TurnRight rotates the heading clockwise, then steps.
	TurnRight
)

// String names the move.
func (m Move) String() string {
	switch m {
	case Forward:
		return "Forward"
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

// State is one immutable puzzle configuration: the body (head first), the
// heading, the remaining apples, and the obstacles. Cell sets are held as
// canonical strings so State is comparable with == and usable as a map key;
// equal configurations always compare equal. Obtain states from a Puzzle,
// not by constructing State values directly.
type State struct {
	body      string
	heading   Heading
	apples    string
	obstacles string
}

// Head returns the cell occupied by the head.
func (s State) Head() Cell {
	head, _, _ := strings.Cut(s.body, "|")

	return decodeCell(head)
}

// Body returns the body segments, head first.
func (s State) Body() []Cell { return decodeCells(s.body) }

// Heading returns the direction the head faces.
func (s State) Heading() Heading { return s.heading }

// Apples returns the remaining apples in row-major order.
func (s State) Apples() []Cell { return decodeCells(s.apples) }

// Obstacles returns the obstacles in row-major order.
func (s State) Obstacles() []Cell { return decodeCells(s.obstacles) }

// encodeCells renders cells as "x,y|x,y|…"; empty input encodes to "".
func encodeCells(cells []Cell) string {
	if len(cells) == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(c.String())
	}

	return b.String()
}

// decodeCell parses one "x,y" pair produced by encodeCells.
func decodeCell(enc string) Cell {
	xs, ys, _ := strings.Cut(enc, ",")
	x, _ := strconv.Atoi(xs)
	y, _ := strconv.Atoi(ys)

	return Cell{X: x, Y: y}
}

// decodeCells parses an encodeCells string back into cells.
func decodeCells(enc string) []Cell {
	if enc == "" {
		return nil
	}
	parts := strings.Split(enc, "|")
	cells := make([]Cell, len(parts))
	for i, part := range parts {
		cells[i] = decodeCell(part)
	}

	return cells
}

// sortCells orders cells row-major (Y, then X) for canonical encoding.
func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}

		return cells[i].X < cells[j].X
	})
}
