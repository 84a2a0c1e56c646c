package frontier

// Stack is a last-in-first-out frontier: Pop removes the most recently
// appended element. The zero Stack is not usable; construct with NewStack.
type Stack[E any, K comparable] struct {
	items []E
	id    Identity[E, K]
}

// NewStack returns an empty LIFO frontier whose membership identity is
// derived by id. Returns ErrNilIdentity if id is nil.
func NewStack[E any, K comparable](id Identity[E, K]) (*Stack[E, K], error) {
	if id == nil {
		return nil, ErrNilIdentity
	}

	return &Stack[E, K]{id: id}, nil
}

// Append pushes e on top of the stack. Complexity: O(1) amortized.
func (s *Stack[E, K]) Append(e E) {
	s.items = append(s.items, e)
}

// Extend pushes every element of es in order, so the last element of es is
// popped first.
func (s *Stack[E, K]) Extend(es []E) {
	s.items = append(s.items, es...)
}

// Pop removes and returns the most recently appended element. The second
// return is false when the stack is empty.
func (s *Stack[E, K]) Pop() (E, bool) {
	if len(s.items) == 0 {
		var zero E

		return zero, false
	}
	n := len(s.items) - 1
	e := s.items[n]
	s.items = s.items[:n]

	return e, true
}

// Len reports the number of elements currently held.
func (s *Stack[E, K]) Len() int { return len(s.items) }

// Contains reports whether any held element shares e's identity key.
// Complexity: O(n).
func (s *Stack[E, K]) Contains(e E) bool {
	k := s.id(e)
	for i := range s.items {
		if s.id(s.items[i]) == k {
			return true
		}
	}

	return false
}
