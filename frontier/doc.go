// Package frontier provides the three open-list container strategies used by
// the search driver: Stack (LIFO), Queue (FIFO), and PriorityQueue (ordered
// by a caller-supplied key function under a Min or Max policy).
//
// What
//
//   - One shared contract across all three containers:
//     Append(e), Extend(es), Pop() (e, ok), Len(), Contains(e).
//   - Containers are generic over the element type E and a comparable
//     membership key type K. An Identity function (E → K) supplied at
//     construction defines element identity for Contains and for the
//     PriorityQueue's keyed Get/Remove: membership never depends on how an
//     element was produced, only on its extracted key.
//   - Stack pops the most recently appended element; Queue pops the earliest;
//     PriorityQueue pops the smallest key under Min or the largest under Max.
//   - PriorityQueue keeps its items sorted ascending by key via binary-search
//     insertion, and additionally supports keyed lookup and keyed removal so
//     cost-aware strategies layered on top can perform decrease-key-style
//     updates. This package wires no such strategy itself.
//
// Why
//
//	The pop order of the frontier is the search strategy: a Stack yields
//	depth-first exploration, a Queue breadth-first, and a PriorityQueue any
//	key-ordered regime. Keeping the containers free of search semantics lets
//	arbitrary problem formulations compose with arbitrary exploration orders.
//
// Determinism
//
//	Append and Extend preserve argument order. Equal-priority items without a
//	tie-break comparator pop in unspecified relative order (the current
//	implementation preserves insertion order); supply WithTieBreak to impose
//	a total order when equal keys matter.
//
// Complexity (n = container length)
//
//   - Stack:         Append O(1), Pop O(1), Contains O(n).
//   - Queue:         Append O(1), Pop O(1) amortized (slice head advance;
//     a ring buffer is allowed but not required), Contains O(n).
//   - PriorityQueue: Append O(log n) search + O(n) shift, Pop O(1) under Max
//     and O(1) amortized under Min, Get/Remove/Contains O(n).
//
// Usage
//
//	// Plain values: identity key is the value itself.
//	st, _ := frontier.NewStack(frontier.Self[int])
//	st.Extend([]int{1, 2, 3})
//	v, ok := st.Pop() // 3, true
//
//	// Priority order with an explicit policy and key function.
//	pq, err := frontier.NewPriorityQueue(frontier.Min,
//	    func(v int) float64 { return float64(v) },
//	    frontier.Self[int],
//	)
//	if err != nil {
//	    // ErrBadPolicy, ErrNilKeyFunc or ErrNilIdentity
//	}
//	pq.Extend([]int{5, 3, 8, 1})
//	v, ok = pq.Pop() // 1, true
//
// Errors
//
//   - ErrBadPolicy    if a PriorityQueue policy is neither Min nor Max.
//   - ErrNilKeyFunc   if a PriorityQueue key function is nil.
//   - ErrNilIdentity  if any container is constructed without an Identity.
//
// An empty Pop is not an error: it returns the zero element and false.
package frontier
