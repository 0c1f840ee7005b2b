package g2l

// Via stacks a cut layer between two conductor layers at a single grid
// node, landing on whatever wires attach there.
type Via struct {
	Node                             Node
	BottomLayer, CutLayer, TopLayer Layer
}

// NewVia constructs a Via. Construction cannot fail: any layer combination
// is deferred to the TechContext at solve time.
func NewVia(node Node, bottomLayer, cutLayer, topLayer Layer) *Via {
	return &Via{Node: node, BottomLayer: bottomLayer, CutLayer: cutLayer, TopLayer: topLayer}
}

// Nodes implements Component.
func (v *Via) Nodes() []Node { return []Node{v.Node} }

// Layers implements Component.
func (v *Via) Layers() []Layer { return []Layer{v.BottomLayer, v.CutLayer, v.TopLayer} }

// ViaBottomLayer implements Component. A Via does not itself advertise a
// stacking layer to a neighboring Via at the same node.
func (v *Via) ViaBottomLayer() (Layer, bool) { return 0, false }

// ViaTopLayer implements Component.
func (v *Via) ViaTopLayer() (Layer, bool) { return 0, false }

// IsHorizontal implements Component. A Via has no direction of its own; it
// reports true so callers that branch on it treat a lone via like a
// zero-length horizontal run.
func (v *Via) IsHorizontal() bool { return true }

// AbsBoxes implements Component, returning the summarized bottom pad, cut
// hull, and top pad, each a single grid-point box at v.Node.
func (v *Via) AbsBoxes(graph *Graph) []AbsBox {
	bottomWidths, topWidths := v.sideWidths(graph)
	bottomPad, cutHull, topPad := graph.Tech.Vias.Boxes(v.BottomLayer, v.TopLayer, bottomWidths, topWidths)

	boxes := make([]AbsBox, 0, 3)
	for _, lr := range [...]struct {
		layer Layer
		rect  Rect
	}{
		{v.BottomLayer, bottomPad},
		{v.CutLayer, cutHull},
		{v.TopLayer, topPad},
	} {
		box, err := NewAbsBox(v.Node.IX, v.Node.IY, v.Node.IX, v.Node.IY, lr.rect, lr.layer)
		if err != nil {
			panic(err)
		}
		boxes = append(boxes, box)
	}
	return boxes
}

// Geometry implements Component, overriding the default fold to substitute
// the detailed farm-via cut array for the single cut hull AbsBoxes uses.
func (v *Via) Geometry(graph *Graph, xMap, yMap map[int]float64) []LayerRect {
	bottomWidths, topWidths := v.sideWidths(graph)
	bottomPad, _, topPad := graph.Tech.Vias.Boxes(v.BottomLayer, v.TopLayer, bottomWidths, topWidths)
	cuts := graph.Tech.Vias.ViaGeometry(v.BottomLayer, v.TopLayer, bottomWidths, topWidths)

	x0, y0 := xMap[v.Node.IX], yMap[v.Node.IY]
	geom := make([]LayerRect, 0, 2+len(cuts))
	geom = append(geom, LayerRect{Layer: v.BottomLayer, Rect: bottomPad.Fold(x0, y0, x0, y0)})
	geom = append(geom, LayerRect{Layer: v.TopLayer, Rect: topPad.Fold(x0, y0, x0, y0)})
	for _, cut := range cuts {
		geom = append(geom, LayerRect{Layer: v.CutLayer, Rect: cut.Fold(x0, y0, x0, y0)})
	}
	return geom
}

// sideWidths scans the components sharing this via's node and reports, for
// each side of the bottom and top landing pads, the width of whatever
// component attaches from that side on the matching stacking layer. Any
// component exposing a width (a Wire or a MOSFET's source/drain terminal)
// can contribute, not only wires, matching the original's generic
// `component.width` read in get_widths. A component that advertises both
// its bottom and top via layer as equal to this via's BottomLayer is
// assigned to the bottom level only, mirroring the original's
// bottom-takes-precedence branch order.
func (v *Via) sideWidths(graph *Graph) (bottomWidths, topWidths SideWidths) {
	for _, c := range graph.ComponentsAt(v.Node.IX, v.Node.IY) {
		var widths *SideWidths
		if bl, ok := c.ViaBottomLayer(); ok && bl == v.BottomLayer {
			widths = &bottomWidths
		} else if tl, ok := c.ViaTopLayer(); ok && tl == v.TopLayer {
			widths = &topWidths
		} else {
			continue
		}
		w, ok := widthOf(c)
		if !ok {
			continue
		}
		side := v.sideOf(c)
		widths[side] = WidthPtr(w)
	}
	return bottomWidths, topWidths
}

// sideOf reports which Side of v.Node c attaches from, based on whether
// c's first node lies at v.Node (extending toward the right or top) or
// away from it (approaching from the left or bottom).
func (v *Via) sideOf(c Component) Side {
	n0 := c.Nodes()[0]
	if c.IsHorizontal() {
		if n0.IX < v.Node.IX {
			return SideLeft
		}
		return SideRight
	}
	if n0.IY < v.Node.IY {
		return SideBottom
	}
	return SideTop
}
