package wfc

import "fmt"

// Node is a single cell: a mutable list of remaining candidate values plus
// a flag marking whether the cell has been explicitly collapsed.
//
// Two nodes are equal iff their ids are equal. Entropy is the length of
// the candidate list and only ever shrinks over the node's lifetime.
type Node[I comparable, V comparable] struct {
	id         I
	candidates []V
	collapsed  bool
}

// NewNode constructs a node with the given id and initial candidate set.
// initial must be non-empty; an empty initial candidate set is a
// programming error, not a runtime condition a caller can recover from.
func NewNode[I comparable, V comparable](id I, initial []V) *Node[I, V] {
	if len(initial) == 0 {
		panic(fmt.Sprintf("wfc: node %v constructed with empty candidate set", id))
	}
	candidates := make([]V, len(initial))
	copy(candidates, initial)
	return &Node[I, V]{id: id, candidates: candidates}
}

// ID returns the node's identifier.
func (n *Node[I, V]) ID() I { return n.id }

// Candidates returns the node's current candidate list. Callers must treat
// it as read-only; the node itself may still reslice it on the next
// mutation.
func (n *Node[I, V]) Candidates() []V { return n.candidates }

// Entropy returns the number of remaining candidates.
func (n *Node[I, V]) Entropy() int { return len(n.candidates) }

// IsCollapsed reports whether this node has been explicitly fixed.
func (n *Node[I, V]) IsCollapsed() bool { return n.collapsed }

// IsOverspecified reports whether this node has no remaining candidates.
func (n *Node[I, V]) IsOverspecified() bool { return len(n.candidates) == 0 }

// CollapsedValue returns the node's fixed value. ok is false unless
// IsCollapsed is true.
func (n *Node[I, V]) CollapsedValue() (value V, ok bool) {
	if !n.collapsed || len(n.candidates) != 1 {
		var zero V
		return zero, false
	}
	return n.candidates[0], true
}

// Equal reports whether two nodes share an id.
func (n *Node[I, V]) Equal(other *Node[I, V]) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.id == other.id
}

// Restrict keeps only candidates satisfying keep, preserving relative
// order. It is the externally usable form of the solver's own candidate
// filtering, used by pkg/render to rehydrate a node from a captured
// snapshot without driving a Solver.
func (n *Node[I, V]) Restrict(keep func(V) bool) bool {
	return n.retain(keep)
}

// Fix forces the node to v and marks it collapsed, exactly as a solver's
// own collapse step would. Used to reconstruct a node that a captured
// snapshot recorded as already collapsed.
func (n *Node[I, V]) Fix(v V) bool {
	return n.collapseTo(v)
}

// retain keeps only candidates satisfying keep, preserving relative order.
// It reports whether the candidate count decreased.
func (n *Node[I, V]) retain(keep func(V) bool) bool {
	before := len(n.candidates)
	out := n.candidates[:0]
	for _, c := range n.candidates {
		if keep(c) {
			out = append(out, c)
		}
	}
	n.candidates = out
	return len(out) != before
}

// collapseTo fixes the node to v and sets the collapsed flag. v must
// currently be present in the candidate list; collapseTo reports whether
// the collapse happened.
func (n *Node[I, V]) collapseTo(v V) bool {
	for _, c := range n.candidates {
		if c == v {
			n.candidates = []V{v}
			n.collapsed = true
			return true
		}
	}
	return false
}
