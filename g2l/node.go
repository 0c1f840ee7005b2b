package g2l

// Node is an immutable position on the abstract integer layout grid.
// Two distinct Nodes may share the same (IX, IY): the solver always
// assigns identical physical coordinates to identical grid indices,
// regardless of how many components reference that index pair.
type Node struct {
	IX, IY int
}

// N is a shortcut constructor, mirroring the original source's `n(ix, iy)`.
func N(ix, iy int) Node {
	return Node{IX: ix, IY: iy}
}

// Less orders nodes lexicographically by (IX, IY), the ordering used to
// normalize component endpoints (e.g. a Wire's n1/n2, a MOSFET's
// source/drain).
func (n Node) Less(o Node) bool {
	if n.IX != o.IX {
		return n.IX < o.IX
	}
	return n.IY < o.IY
}
