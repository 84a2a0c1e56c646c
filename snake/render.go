package snake

import "strings"

// Render draws the configuration as a rune grid using the Parse alphabet,
// rows joined by newlines and no trailing newline. Cells outside the given
// bounds are skipped.
func (s State) Render(width, height int) string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = runeEmpty
		}
	}
	put := func(c Cell, r rune) {
		if c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height {
			grid[c.Y][c.X] = r
		}
	}
	for _, c := range s.Obstacles() {
		put(c, runeObstacle)
	}
	for _, c := range s.Apples() {
		put(c, runeApple)
	}
	body := s.Body()
	for _, c := range body {
		put(c, runeBody)
	}
	if len(body) > 0 {
		put(body[0], s.heading.Rune())
	}

	var b strings.Builder
	b.Grow((width + 1) * height)
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}

	return b.String()
}

// Render draws s within the puzzle's own bounds.
func (p *Puzzle) Render(s State) string { return s.Render(p.Width, p.Height) }

// FormatPlan renders a move sequence as a comma-separated list, or a fixed
// phrase for the empty plan.
func FormatPlan(moves []Move) string {
	if len(moves) == 0 {
		return "no moves needed"
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}

	return strings.Join(names, ", ")
}
