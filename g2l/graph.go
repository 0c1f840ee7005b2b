package g2l

// Graph is the mutable container of Components the Solver and Producer
// operate on. It is constructed empty and mutated only via Add; once a
// Solver is built from it, it is treated as read-only.
type Graph struct {
	// Tech is the technology context every component in this graph was
	// built against.
	Tech TechContext

	components []Component
	xIndexes   map[int]struct{}
	yIndexes   map[int]struct{}
	byNode     map[Node][]Component
	byLayer    map[Layer][]Component
}

// NewGraph creates an empty Graph bound to tech.
func NewGraph(tech TechContext) *Graph {
	return &Graph{
		Tech:       tech,
		xIndexes:   map[int]struct{}{},
		yIndexes:   map[int]struct{}{},
		byNode:     map[Node][]Component{},
		byLayer:    map[Layer][]Component{},
	}
}

// Add appends component to the graph, in insertion order, and indexes it by
// every distinct node and layer it declares. A component that lists the
// same (IX, IY) more than once (e.g. a degenerate zero-length wire) is
// indexed under that node only once, per spec.md's DESIGN NOTES tightening
// of the original's unconditional-append behavior.
func (g *Graph) Add(c Component) {
	g.components = append(g.components, c)

	seen := map[Node]struct{}{}
	for _, n := range c.Nodes() {
		g.xIndexes[n.IX] = struct{}{}
		g.yIndexes[n.IY] = struct{}{}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		g.byNode[n] = append(g.byNode[n], c)
	}

	for _, l := range c.Layers() {
		g.byLayer[l] = append(g.byLayer[l], c)
	}
}

// Components returns every component in insertion order. The returned slice
// is owned by the Graph and must not be mutated.
func (g *Graph) Components() []Component {
	return g.components
}

// ComponentsAt returns the components attached to node (ix, iy), in the
// order they were added, or an empty slice if none attach there.
func (g *Graph) ComponentsAt(ix, iy int) []Component {
	return g.byNode[Node{IX: ix, IY: iy}]
}

// ComponentsOnLayer returns the components occupying layer, in the order
// they were added.
func (g *Graph) ComponentsOnLayer(layer Layer) []Component {
	return g.byLayer[layer]
}

// XIndexes returns the distinct x grid indices used by any component, in
// ascending order.
func (g *Graph) XIndexes() []int {
	return sortedKeys(g.xIndexes)
}

// YIndexes returns the distinct y grid indices used by any component, in
// ascending order.
func (g *Graph) YIndexes() []int {
	return sortedKeys(g.yIndexes)
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Small inputs (grid index counts rarely exceed a few hundred):
	// insertion sort keeps this file free of a sort import for a single
	// call site's worth of benefit. Swap for sort.Ints if grids grow.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
