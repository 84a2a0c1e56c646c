package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/statespace/search"
)

// chain is the line graph 0→1→…→last with a single "next" action per state.
type chain struct {
	search.Base[int, string]
	last int
}

// newChain builds a chain formulation starting at 0 with the given goal
// state; states beyond last have no successors.
func newChain(goal, last int) chain {
	return chain{Base: search.NewGoalBase[int, string](0, goal), last: last}
}

func (c chain) Successors(s int) []search.Successor[int, string] {
	if s >= c.last {
		return nil
	}

	return []search.Successor[int, string]{{Action: "next", State: s + 1}}
}

// valued adds the optional objective capability on top of chain.
type valued struct {
	chain
}

func (valued) Value(s int) float64 { return -float64(s) }

func TestBase_NoGoalNeverTests(t *testing.T) {
	b := search.NewBase[int, string](7)
	assert.Equal(t, 7, b.Initial())
	assert.False(t, b.GoalTest(7), "without a stored goal no state should test positive")
	assert.False(t, b.GoalTest(0))

	_, ok := b.Goal()
	assert.False(t, ok)
}

func TestBase_GoalEquality(t *testing.T) {
	b := search.NewGoalBase[int, string](0, 5)
	assert.True(t, b.GoalTest(5))
	assert.False(t, b.GoalTest(4))

	g, ok := b.Goal()
	assert.True(t, ok)
	assert.Equal(t, 5, g)
}

func TestBase_UnitStepCost(t *testing.T) {
	b := search.NewBase[int, string](0)
	assert.Equal(t, 1.0, b.PathCost(0, 0, "next", 1))
	assert.Equal(t, 4.5, b.PathCost(3.5, 9, "next", 10))
}

func TestActions_OrderAndTerminal(t *testing.T) {
	p := newChain(5, 5)
	assert.Equal(t, []string{"next"}, search.Actions[int, string](p, 0))
	assert.Empty(t, search.Actions[int, string](p, 5), "terminal state should offer no actions")
}

func TestResult_KnownAction(t *testing.T) {
	p := newChain(5, 5)
	to, err := search.Result[int, string](p, 2, "next")
	assert.NoError(t, err)
	assert.Equal(t, 3, to)
}

func TestResult_UnknownAction(t *testing.T) {
	p := newChain(5, 5)

	_, err := search.Result[int, string](p, 2, "jump")
	assert.ErrorIs(t, err, search.ErrActionNotFound)

	_, err = search.Result[int, string](p, 5, "next")
	assert.ErrorIs(t, err, search.ErrActionNotFound, "terminal states have no available actions")
}

func TestValue_NotImplemented(t *testing.T) {
	p := newChain(5, 5)
	_, err := search.Value[int, string](p, 3)
	assert.ErrorIs(t, err, search.ErrNotImplemented)
}

func TestValue_Implemented(t *testing.T) {
	p := valued{newChain(5, 5)}
	v, err := search.Value[int, string](p, 3)
	assert.NoError(t, err)
	assert.Equal(t, -3.0, v)
}
