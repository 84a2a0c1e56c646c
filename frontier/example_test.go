package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/frontier"
)

// ExampleNewPriorityQueue demonstrates the Min policy with an identity key:
// elements drain in ascending order regardless of insertion order.
func ExampleNewPriorityQueue() {
	pq, err := frontier.NewPriorityQueue(frontier.Min,
		func(v int) float64 { return float64(v) },
		frontier.Self[int],
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	pq.Extend([]int{5, 3, 8, 1})
	for {
		v, ok := pq.Pop()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 3
	// 5
	// 8
}

// ExampleNewStack shows the LIFO discipline that yields depth-first search
// when the stack serves as a frontier.
func ExampleNewStack() {
	st, _ := frontier.NewStack(frontier.Self[string])
	st.Extend([]string{"A", "B", "C"})
	for {
		v, ok := st.Pop()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// C
	// B
	// A
}
