package wfc

// Shape aggregates the nodes a Solver operates over. A Shape owns its
// nodes; the Solver only ever borrows them.
type Shape[I comparable, V comparable] interface {
	// IterNodeIDs returns every node id in a finite, stable order.
	IterNodeIDs() []I

	// GetNode looks up a node by id. ok is false if no such node exists.
	GetNode(id I) (node *Node[I, V], ok bool)

	// AllCollapsed reports whether every node is collapsed.
	AllCollapsed() bool

	// AnyOverspecified reports whether any node has an empty candidate
	// list.
	AnyOverspecified() bool

	// PickMinEntropy returns a uniformly random node among those that are
	// uncollapsed and not overspecified and whose entropy is minimal
	// among such nodes. ok is false if no such node exists.
	PickMinEntropy(rng RNG) (node *Node[I, V], ok bool)

	// NewKernel builds the neighborhood view for center.
	NewKernel(center *Node[I, V]) Kernel[I, V]
}

// LastCollapseRecorder is an optional Shape capability: shapes that
// implement it let callers (typically renderers) highlight the most
// recently fixed cell. It is not part of the Shape contract proper.
type LastCollapseRecorder[I comparable] interface {
	MarkLastCollapsed(id I)
	LastCollapsed() (id I, ok bool)
}

// PickMinEntropy is the shared single-pass selection algorithm described
// for the Shape protocol: scan every node, skip collapsed or overspecified
// ones, track the bucket of nodes tied at the current minimum entropy, and
// return a uniformly random member of the final bucket. Concrete Shapes
// call this from their own PickMinEntropy rather than reimplementing the
// scan.
func PickMinEntropy[I comparable, V comparable](shape Shape[I, V], rng RNG) (*Node[I, V], bool) {
	var bucket []*Node[I, V]
	minEntropy := -1

	for _, id := range shape.IterNodeIDs() {
		node, ok := shape.GetNode(id)
		if !ok || node.IsCollapsed() || node.IsOverspecified() {
			continue
		}
		entropy := node.Entropy()
		switch {
		case minEntropy == -1 || entropy < minEntropy:
			minEntropy = entropy
			bucket = bucket[:0]
			bucket = append(bucket, node)
		case entropy == minEntropy:
			bucket = append(bucket, node)
		}
	}

	if len(bucket) == 0 {
		return nil, false
	}
	return pickUniform(bucket, rng), true
}
