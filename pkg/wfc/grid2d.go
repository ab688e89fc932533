package wfc

import "fmt"

// Point identifies a cell in a Grid2D by its coordinates.
type Point struct {
	X, Y int
}

// String renders a Point the way the rest of this package's diagnostics
// expect, e.g. "(3,4)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// BorderPolicy selects how a Grid2D kernel resolves offsets that would
// otherwise leave the grid.
type BorderPolicy int

const (
	// Cutoff omits neighbor coordinates outside the grid.
	Cutoff BorderPolicy = iota
	// Wrapping reduces neighbor coordinates modulo the grid dimensions
	// using Euclidean remainder, so negative offsets wrap correctly.
	Wrapping
)

// Grid2D is the concrete rectangular Shape: width x height cells, each
// identified by a Point, with a kernel size whose dimensions must both be
// odd and a border policy applied uniformly by every kernel it builds.
type Grid2D[V comparable] struct {
	width, height int
	kw, kh        int
	rx, ry        int
	policy        BorderPolicy

	nodes []*Node[Point, V] // column-major: index = x*height + y
	order []Point           // cached row-major enumeration order

	lastCollapsed   Point
	hasLastCollapse bool
}

// NewGrid2D allocates a width x height grid where every cell starts in a
// superposition of a copy of initialCandidates. kw and kh must both be
// odd; an even kernel dimension or an empty candidate set is a programming
// error and panics, matching how this package treats malformed
// construction elsewhere (see NewNode).
func NewGrid2D[V comparable](width, height, kw, kh int, policy BorderPolicy, initialCandidates []V) *Grid2D[V] {
	if kw%2 == 0 || kh%2 == 0 {
		panic(fmt.Sprintf("wfc: kernel size (%d,%d) must have odd dimensions", kw, kh))
	}
	if len(initialCandidates) == 0 {
		panic("wfc: grid constructed with empty initial candidate set")
	}

	g := &Grid2D[V]{
		width: width, height: height,
		kw: kw, kh: kh,
		rx: (kw - 1) / 2, ry: (kh - 1) / 2,
		policy: policy,
	}
	g.nodes = make([]*Node[Point, V], width*height)
	g.order = make([]Point, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{X: x, Y: y}
			g.nodes[g.index(x, y)] = NewNode(p, initialCandidates)
			g.order = append(g.order, p)
		}
	}
	return g
}

func (g *Grid2D[V]) index(x, y int) int { return x*g.height + y }

// Width returns the grid's width in cells.
func (g *Grid2D[V]) Width() int { return g.width }

// Height returns the grid's height in cells.
func (g *Grid2D[V]) Height() int { return g.height }

// KernelSize returns the configured (kw, kh) kernel dimensions.
func (g *Grid2D[V]) KernelSize() (int, int) { return g.kw, g.kh }

// BorderPolicy returns the grid's border policy.
func (g *Grid2D[V]) BorderPolicy() BorderPolicy { return g.policy }

// IterNodeIDs returns every cell's Point in row-major order (y outer, x
// inner).
func (g *Grid2D[V]) IterNodeIDs() []Point { return g.order }

// GetNode looks up the node at id, if id is within the grid.
func (g *Grid2D[V]) GetNode(id Point) (*Node[Point, V], bool) {
	if id.X < 0 || id.X >= g.width || id.Y < 0 || id.Y >= g.height {
		return nil, false
	}
	return g.nodes[g.index(id.X, id.Y)], true
}

// AllCollapsed reports whether every cell in the grid is collapsed.
func (g *Grid2D[V]) AllCollapsed() bool {
	for _, n := range g.nodes {
		if !n.IsCollapsed() {
			return false
		}
	}
	return true
}

// AnyOverspecified reports whether any cell has been driven to zero
// candidates.
func (g *Grid2D[V]) AnyOverspecified() bool {
	for _, n := range g.nodes {
		if n.IsOverspecified() {
			return true
		}
	}
	return false
}

// PickMinEntropy delegates to the package-level single-pass selection
// algorithm shared by every Shape implementation.
func (g *Grid2D[V]) PickMinEntropy(rng RNG) (*Node[Point, V], bool) {
	return PickMinEntropy[Point, V](g, rng)
}

// NewKernel builds the neighborhood view for center according to the
// grid's kernel size and border policy.
func (g *Grid2D[V]) NewKernel(center *Node[Point, V]) Kernel[Point, V] {
	return newGrid2DKernel(g, center.ID())
}

// MarkLastCollapsed records id as the most recently collapsed cell. It
// implements the optional LastCollapseRecorder capability.
func (g *Grid2D[V]) MarkLastCollapsed(id Point) {
	g.lastCollapsed = id
	g.hasLastCollapse = true
}

// LastCollapsed returns the most recently collapsed cell's id, if any has
// been recorded yet.
func (g *Grid2D[V]) LastCollapsed() (Point, bool) {
	return g.lastCollapsed, g.hasLastCollapse
}

// Grid2DKernel is the Kernel implementation Grid2D builds. Beyond the
// generic Kernel contract it exposes offset-relative access, which is how
// a Grid2D-aware compatibility predicate is expected to read its
// neighbors (see pkg/tileset).
type Grid2DKernel[V comparable] struct {
	grid   *Grid2D[V]
	center Point
	ids    []Point
}

func newGrid2DKernel[V comparable](g *Grid2D[V], center Point) *Grid2DKernel[V] {
	k := &Grid2DKernel[V]{grid: g, center: center}
	k.ids = k.computeIDs()
	return k
}

func (k *Grid2DKernel[V]) computeIDs() []Point {
	g := k.grid
	ids := make([]Point, 0, g.kw*g.kh)
	for dy := -g.ry; dy <= g.ry; dy++ {
		for dx := -g.rx; dx <= g.rx; dx++ {
			if p, ok := k.resolve(dx, dy); ok {
				ids = append(ids, p)
			}
		}
	}
	return ids
}

func (k *Grid2DKernel[V]) resolve(dx, dy int) (Point, bool) {
	g := k.grid
	switch g.policy {
	case Wrapping:
		return Point{
			X: emod(k.center.X+dx, g.width),
			Y: emod(k.center.Y+dy, g.height),
		}, true
	default: // Cutoff
		x, y := k.center.X+dx, k.center.Y+dy
		if x < 0 || x >= g.width || y < 0 || y >= g.height {
			return Point{}, false
		}
		return Point{X: x, Y: y}, true
	}
}

// IterNodeIDs returns every cell id the kernel can see, including the
// center.
func (k *Grid2DKernel[V]) IterNodeIDs() []Point { return k.ids }

// Center returns the id the kernel was built for.
func (k *Grid2DKernel[V]) Center() Point { return k.center }

// Get returns the node at id if id is part of this kernel's neighborhood.
func (k *Grid2DKernel[V]) Get(id Point) (*Node[Point, V], bool) {
	for _, c := range k.ids {
		if c == id {
			return k.grid.GetNode(id)
		}
	}
	return nil, false
}

// RadiusX returns the kernel's horizontal radius.
func (k *Grid2DKernel[V]) RadiusX() int { return k.grid.rx }

// RadiusY returns the kernel's vertical radius.
func (k *Grid2DKernel[V]) RadiusY() int { return k.grid.ry }

// GetOffset returns the node at (dx, dy) relative to the kernel's center,
// or (nil, false) if the offset is outside the kernel's radii or (in
// Cutoff mode) leaves the grid.
func (k *Grid2DKernel[V]) GetOffset(dx, dy int) (*Node[Point, V], bool) {
	if dx < -k.grid.rx || dx > k.grid.rx || dy < -k.grid.ry || dy > k.grid.ry {
		return nil, false
	}
	p, ok := k.resolve(dx, dy)
	if !ok {
		return nil, false
	}
	return k.grid.GetNode(p)
}

// emod is the Euclidean modulo: the result always has the sign of n (here
// always non-negative since grid dimensions are positive), so negative
// offsets wrap correctly instead of producing a negative index.
func emod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
