package frontier

import "sort"

// PQOption configures optional PriorityQueue behavior at construction.
type PQOption[E any] func(*pqConfig[E])

type pqConfig[E any] struct {
	less func(a, b E) bool
}

// WithTieBreak imposes a total order among elements whose priority keys are
// equal: less(a, b) reports whether a sorts before b. Without a tie-break
// the relative pop order of equal-key elements is unspecified.
func WithTieBreak[E any](less func(a, b E) bool) PQOption[E] {
	return func(c *pqConfig[E]) {
		if less != nil {
			c.less = less
		}
	}
}

// pqItem caches the priority key next to its element so ordering never
// re-invokes the key function on held elements.
type pqItem[E any] struct {
	el  E
	key float64
}

// PriorityQueue is a frontier ordered by a caller-supplied key function.
// Items are kept sorted ascending by key; Pop removes the front element
// under the Min policy and the back element under Max. The zero
// PriorityQueue is not usable; construct with NewPriorityQueue.
type PriorityQueue[E any, K comparable] struct {
	items []pqItem[E]
	pol   Policy
	key   KeyFunc[E]
	id    Identity[E, K]
	less  func(a, b E) bool
}

// NewPriorityQueue returns an empty priority frontier popping by pol order
// of key, with membership identity derived by id.
// Returns ErrBadPolicy unless pol is exactly Min or Max, ErrNilKeyFunc if
// key is nil, and ErrNilIdentity if id is nil.
func NewPriorityQueue[E any, K comparable](pol Policy, key KeyFunc[E], id Identity[E, K], opts ...PQOption[E]) (*PriorityQueue[E, K], error) {
	if pol != Min && pol != Max {
		return nil, ErrBadPolicy
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	if id == nil {
		return nil, ErrNilIdentity
	}
	var cfg pqConfig[E]
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PriorityQueue[E, K]{pol: pol, key: key, id: id, less: cfg.less}, nil
}

// Append inserts e at its sorted position: binary search for the insertion
// point, then shift. Equal keys fall back to the tie-break comparator when
// one was supplied; otherwise e lands after existing equal-key items.
// Complexity: O(log n) search + O(n) shift.
func (pq *PriorityQueue[E, K]) Append(e E) {
	k := pq.key(e)
	// First index whose item sorts strictly after e under (key, tie-break).
	i := sort.Search(len(pq.items), func(i int) bool {
		if pq.items[i].key != k {
			return pq.items[i].key > k
		}

		return pq.less != nil && pq.less(e, pq.items[i].el)
	})
	pq.items = append(pq.items, pqItem[E]{})
	copy(pq.items[i+1:], pq.items[i:])
	pq.items[i] = pqItem[E]{el: e, key: k}
}

// Extend inserts every element of es in order.
func (pq *PriorityQueue[E, K]) Extend(es []E) {
	for _, e := range es {
		pq.Append(e)
	}
}

// Pop removes and returns the front element under Min or the back element
// under Max. The second return is false when the queue is empty.
func (pq *PriorityQueue[E, K]) Pop() (E, bool) {
	if len(pq.items) == 0 {
		var zero E

		return zero, false
	}
	if pq.pol == Max {
		n := len(pq.items) - 1
		e := pq.items[n].el
		pq.items = pq.items[:n]

		return e, true
	}
	e := pq.items[0].el
	pq.items = pq.items[1:]

	return e, true
}

// Len reports the number of elements currently held.
func (pq *PriorityQueue[E, K]) Len() int { return len(pq.items) }

// Contains reports whether any held element has identity key equal to e's.
// Complexity: O(n).
func (pq *PriorityQueue[E, K]) Contains(e E) bool {
	_, ok := pq.Get(pq.id(e))

	return ok
}

// Get returns the first held element (in ascending key order) whose
// identity key equals k. Supports decrease-key-style inspection by
// strategies layered on top. Complexity: O(n) linear scan.
func (pq *PriorityQueue[E, K]) Get(k K) (E, bool) {
	for i := range pq.items {
		if pq.id(pq.items[i].el) == k {
			return pq.items[i].el, true
		}
	}
	var zero E

	return zero, false
}

// Remove deletes and returns the first held element (in ascending key
// order) whose identity key equals k. The second return is false when no
// element matches. Complexity: O(n).
func (pq *PriorityQueue[E, K]) Remove(k K) (E, bool) {
	for i := range pq.items {
		if pq.id(pq.items[i].el) == k {
			e := pq.items[i].el
			pq.items = append(pq.items[:i], pq.items[i+1:]...)

			return e, true
		}
	}
	var zero E

	return zero, false
}
