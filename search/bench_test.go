package search_test

import (
	"testing"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/search"
)

// lattice is an implicit W×H grid admitting "right" and "down" moves, so
// the frontier grows wide without materializing the graph up front.
type lattice struct {
	search.Base[[2]int, string]
	w, h int
}

func newLattice(w, h int) lattice {
	return lattice{
		Base: search.NewGoalBase[[2]int, string]([2]int{0, 0}, [2]int{w - 1, h - 1}),
		w:    w,
		h:    h,
	}
}

func (l lattice) Successors(s [2]int) []search.Successor[[2]int, string] {
	succ := make([]search.Successor[[2]int, string], 0, 2)
	if s[0]+1 < l.w {
		succ = append(succ, search.Successor[[2]int, string]{Action: "right", State: [2]int{s[0] + 1, s[1]}})
	}
	if s[1]+1 < l.h {
		succ = append(succ, search.Successor[[2]int, string]{Action: "down", State: [2]int{s[0], s[1] + 1}})
	}

	return succ
}

// BenchmarkBreadthFirstSearch_Chain measures the driver on a linear space.
func BenchmarkBreadthFirstSearch_Chain(b *testing.B) {
	p := newChain(1000, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BreadthFirstSearch[int, string](p, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBreadthFirstSearch_Lattice measures a wide frontier: M² states,
// goal in the far corner.
func BenchmarkBreadthFirstSearch_Lattice(b *testing.B) {
	const M = 50
	p := newLattice(M, M)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.BreadthFirstSearch[[2]int, string](p, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDepthFirstSearch_Lattice measures the same space depth-first.
func BenchmarkDepthFirstSearch_Lattice(b *testing.B) {
	const M = 50
	p := newLattice(M, M)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.DepthFirstSearch[[2]int, string](p, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGraphSearch_CostOrdered measures the driver with a sorted
// priority frontier over the lattice, unit edge costs.
func BenchmarkGraphSearch_CostOrdered(b *testing.B) {
	const M = 30
	p := newLattice(M, M)
	key := func(n *search.Node[[2]int, string]) float64 { return n.PathCost() }
	id := func(n *search.Node[[2]int, string]) [2]int { return n.State() }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pq, err := frontier.NewPriorityQueue[*search.Node[[2]int, string], [2]int](frontier.Min, key, id)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := search.GraphSearch[[2]int, string](p, pq, nil); err != nil {
			b.Fatal(err)
		}
	}
}
