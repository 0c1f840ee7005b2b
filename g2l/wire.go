package g2l

import "fmt"

// Wire is a horizontal or vertical connection between two grid nodes on a
// single layer, with a uniform width.
type Wire struct {
	Width  float64
	Layer  Layer
	N1, N2 Node
}

// NewWire validates and constructs a Wire. n1 and n2 must be collinear
// (share IX or IY); the endpoints are normalized so N1 <= N2 lexically.
// Returns ErrInvalidWireDirection if the nodes are not collinear, or
// ErrInvalidWidth if width is not positive.
func NewWire(width float64, layer Layer, n1, n2 Node) (*Wire, error) {
	if n1.IX != n2.IX && n1.IY != n2.IY {
		return nil, fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrInvalidWireDirection, n1.IX, n1.IY, n2.IX, n2.IY)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}
	if n2.Less(n1) {
		n1, n2 = n2, n1
	}
	return &Wire{Width: width, Layer: layer, N1: n1, N2: n2}, nil
}

// Nodes implements Component.
func (w *Wire) Nodes() []Node { return []Node{w.N1, w.N2} }

// Layers implements Component.
func (w *Wire) Layers() []Layer { return []Layer{w.Layer} }

// ViaBottomLayer implements Component: a wire advertises its own layer as
// both the bottom and top via-stacking layer.
func (w *Wire) ViaBottomLayer() (Layer, bool) { return w.Layer, true }

// ViaTopLayer implements Component.
func (w *Wire) ViaTopLayer() (Layer, bool) { return w.Layer, true }

// IsHorizontal implements Component.
func (w *Wire) IsHorizontal() bool { return w.N1.IY == w.N2.IY }

// AsWire satisfies the wireCapable capability query.
func (w *Wire) AsWire() *Wire { return w }

// viaAttachWidth satisfies the widthCapable capability query.
func (w *Wire) viaAttachWidth() float64 { return w.Width }

// AbsBoxes implements Component. It returns exactly one box spanning the
// wire's grid extents, whose footprint is widened at each endpoint to
// absorb any perpendicular same-layer wire meeting it there (a T-junction).
func (w *Wire) AbsBoxes(graph *Graph) []AbsBox {
	pad1 := w.minPadAt(graph, w.N1)
	pad2 := w.minPadAt(graph, w.N2)

	halfW := 0.5 * w.Width
	var footprint Rect
	if w.IsHorizontal() {
		footprint = NewRect(pad1.Left, -halfW, pad2.Right, halfW)
	} else {
		footprint = NewRect(-halfW, pad1.Bottom, halfW, pad2.Top)
	}

	ix1, ix2 := w.N1.IX, w.N2.IX
	if ix1 > ix2 {
		ix1, ix2 = ix2, ix1
	}
	iy1, iy2 := w.N1.IY, w.N2.IY
	if iy1 > iy2 {
		iy1, iy2 = iy2, iy1
	}

	box, err := NewAbsBox(ix1, iy1, ix2, iy2, footprint, w.Layer)
	if err != nil {
		// Construction already guaranteed ix1<=ix2, iy1<=iy2; this
		// cannot happen.
		panic(err)
	}
	return []AbsBox{box}
}

// minPadAt computes the perpendicular-widening contribution at node v: for
// every Wire on the same layer terminating at v, enlarge the footprint axis
// normal to w's own direction by half that neighbor's width. Parallel wires
// on the same layer at v contribute zero, since their contribution only
// widens the axis along which w itself doesn't extend its pad.
func (w *Wire) minPadAt(graph *Graph, v Node) Rect {
	box := Rect{}
	for _, c := range graph.ComponentsAt(v.IX, v.IY) {
		nc, ok := AsWire(c)
		if !ok || nc.Layer != w.Layer {
			continue
		}
		if nc.IsHorizontal() {
			box = box.Union(NewRect(0, -0.5*nc.Width, 0, 0.5*nc.Width))
		} else {
			box = box.Union(NewRect(-0.5*nc.Width, 0, 0.5*nc.Width, 0))
		}
	}
	return box
}

// Geometry implements Component using the default fold of AbsBoxes.
func (w *Wire) Geometry(graph *Graph, xMap, yMap map[int]float64) []LayerRect {
	return GeometryForBoxes(xMap, yMap, w.AbsBoxes(graph))
}
