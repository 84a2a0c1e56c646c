package search

// Node pairs a state with the edge that produced it during search: the
// parent node, the action taken, the accumulated path cost, and the depth.
// Nodes are immutable once created and form a tree rooted at the node
// wrapping the problem's initial state; a node is only ever created as the
// child of an existing node, so parent chains are acyclic by construction.
//
// Node identity is the wrapped state alone: two nodes carrying equal states
// are interchangeable for deduplication and frontier membership even when
// their costs, depths, or parent chains differ. Formulations where the
// route, not the terminal state, determines feasibility override the
// closed-set key via Options.VisitedKey.
type Node[S comparable, A comparable] struct {
	state    S
	parent   *Node[S, A]
	action   A
	pathCost float64
	depth    int
}

// Root wraps an initial state in a depth-0, cost-0 node with no parent.
func Root[S comparable, A comparable](state S) *Node[S, A] {
	return &Node[S, A]{state: state}
}

// State returns the wrapped state.
func (n *Node[S, A]) State() S { return n.state }

// Parent returns the node this one was expanded from, or nil for the root.
func (n *Node[S, A]) Parent() *Node[S, A] { return n.parent }

// Action returns the edge label from the parent to this node. For the root
// it is the zero value of A and carries no meaning.
func (n *Node[S, A]) Action() A { return n.action }

// PathCost returns the accumulated cost of the edges from the root.
func (n *Node[S, A]) PathCost() float64 { return n.pathCost }

// Depth returns the number of edges from the root; 0 for the root itself.
func (n *Node[S, A]) Depth() int { return n.depth }

// Equal reports state equality: path cost, depth, and parentage never
// participate in node identity.
func (n *Node[S, A]) Equal(o *Node[S, A]) bool {
	if n == nil || o == nil {
		return n == o
	}

	return n.state == o.state
}

// Expand generates one child node per successor of n's state, in the order
// the problem yields them. Each child's path cost accumulates via
// p.PathCost and its depth is n.Depth()+1.
func (n *Node[S, A]) Expand(p Problem[S, A]) []*Node[S, A] {
	succ := p.Successors(n.state)
	if len(succ) == 0 {
		return nil
	}
	children := make([]*Node[S, A], len(succ))
	for i, sc := range succ {
		children[i] = &Node[S, A]{
			state:    sc.State,
			parent:   n,
			action:   sc.Action,
			pathCost: p.PathCost(n.pathCost, n.state, sc.Action, sc.State),
			depth:    n.depth + 1,
		}
	}

	return children
}

// Path returns the chain of nodes from the root to n, root first.
func (n *Node[S, A]) Path() []*Node[S, A] {
	nodes := make([]*Node[S, A], 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		nodes = append(nodes, cur)
	}
	reverse(nodes)

	return nodes
}

// Solution returns the actions along the path from the root to n. The root
// contributes no action, so the result has exactly Depth() entries.
func (n *Node[S, A]) Solution() []A {
	acts := make([]A, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		acts = append(acts, cur.action)
	}
	reverse(acts)

	return acts
}

// States returns every state along the path from the root to n, the root's
// included, so the result has Depth()+1 entries.
func (n *Node[S, A]) States() []S {
	states := make([]S, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		states = append(states, cur.state)
	}
	reverse(states)

	return states
}

// reverse flips a slice in place.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
