package snake

import "fmt"

// Grid runes accepted by Parse and produced by Render.
const (
	runeEmpty    = '.'
	runeObstacle = '#'
	runeApple    = '*'
	runeBody     = 'o'
)

// headingForRune maps a head rune to its heading.
func headingForRune(r rune) (Heading, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	default:
		return 0, false
	}
}

// Parse builds a Puzzle from a rune grid, one string per row:
//
//	#  obstacle   .  empty   *  apple   o  body segment
//	^ v < >  the head, facing up, down, left or right
//
// The body order behind the head is reconstructed by walking the unique
// chain of adjacent segments. Returns ErrEmptyGrid, ErrNonRectangular,
// ErrNoHead, ErrMultipleHeads, ErrBadRune, ErrAmbiguousBody,
// ErrBodyDisjoint, or any New validation error.
// Complexity: O(W×H).
func Parse(rows []string) (*Puzzle, error) {
	if len(rows) == 0 || len([]rune(rows[0])) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	height := len(rows)

	var (
		head      Cell
		heading   Heading
		haveHead  bool
		segments  = map[Cell]bool{}
		apples    []Cell
		obstacles []Cell
	)
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(cells), width)
		}
		for x, r := range cells {
			c := Cell{X: x, Y: y}
			if h, ok := headingForRune(r); ok {
				if haveHead {
					return nil, fmt.Errorf("%w: second head at %v", ErrMultipleHeads, c)
				}
				head, heading, haveHead = c, h, true

				continue
			}
			switch r {
			case runeEmpty:
			case runeObstacle:
				obstacles = append(obstacles, c)
			case runeApple:
				apples = append(apples, c)
			case runeBody:
				segments[c] = true
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadRune, r, c)
			}
		}
	}
	if !haveHead {
		return nil, ErrNoHead
	}

	body, err := chainBody(head, segments)
	if err != nil {
		return nil, err
	}

	return New(width, height, body, heading, apples, obstacles)
}

// chainBody orders the body segments by walking from the head along the
// unique chain of adjacent unvisited segments. Exactly one candidate must
// exist at every step while segments remain, and every segment must be
// reached.
func chainBody(head Cell, segments map[Cell]bool) ([]Cell, error) {
	body := make([]Cell, 0, len(segments)+1)
	body = append(body, head)

	visited := map[Cell]bool{head: true}
	cur := head
	for remaining := len(segments); remaining > 0; remaining-- {
		var next Cell
		candidates := 0
		for h := Up; h <= Left; h++ {
			dx, dy := h.Delta()
			n := Cell{X: cur.X + dx, Y: cur.Y + dy}
			if segments[n] && !visited[n] {
				next = n
				candidates++
			}
		}
		switch {
		case candidates == 0:
			return nil, fmt.Errorf("%w: %d segments unreachable behind the head", ErrBodyDisjoint, remaining)
		case candidates > 1:
			return nil, fmt.Errorf("%w: multiple segments touch %v", ErrAmbiguousBody, cur)
		}
		body = append(body, next)
		visited[next] = true
		cur = next
	}

	return body, nil
}
