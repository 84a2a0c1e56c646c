package frontier

// Queue is a first-in-first-out frontier: Pop removes the earliest appended
// element. The zero Queue is not usable; construct with NewQueue.
type Queue[E any, K comparable] struct {
	items []E
	id    Identity[E, K]
}

// NewQueue returns an empty FIFO frontier whose membership identity is
// derived by id. Returns ErrNilIdentity if id is nil.
func NewQueue[E any, K comparable](id Identity[E, K]) (*Queue[E, K], error) {
	if id == nil {
		return nil, ErrNilIdentity
	}

	return &Queue[E, K]{id: id}, nil
}

// Append enqueues e at the back. Complexity: O(1) amortized.
func (q *Queue[E, K]) Append(e E) {
	q.items = append(q.items, e)
}

// Extend enqueues every element of es in order, so the first element of es
// is popped first among them.
func (q *Queue[E, K]) Extend(es []E) {
	q.items = append(q.items, es...)
}

// Pop removes and returns the earliest appended element. The second return
// is false when the queue is empty. The head advances by reslicing, so the
// cost is O(1) amortized rather than the O(n) shift a naive dequeue implies.
func (q *Queue[E, K]) Pop() (E, bool) {
	if len(q.items) == 0 {
		var zero E

		return zero, false
	}
	e := q.items[0]
	q.items = q.items[1:]

	return e, true
}

// Len reports the number of elements currently held.
func (q *Queue[E, K]) Len() int { return len(q.items) }

// Contains reports whether any held element shares e's identity key.
// Complexity: O(n).
func (q *Queue[E, K]) Contains(e E) bool {
	k := q.id(e)
	for i := range q.items {
		if q.id(q.items[i]) == k {
			return true
		}
	}

	return false
}
