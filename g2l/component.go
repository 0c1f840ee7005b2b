package g2l

// LayerRect pairs a final physical rectangle with the layer it sits on,
// the element type Component.Geometry produces.
type LayerRect struct {
	Layer Layer
	Rect  Rect
}

// Component is a polymorphic element contributing nodes, layers, abstract
// boxes, and final geometry to a Graph. Wire, Via, and MOSFET are the three
// concrete variants.
type Component interface {
	// Nodes returns the component's grid nodes in ascending, collinear
	// order (all sharing IY, or all sharing IX) for multi-node
	// components; a Via supplies exactly one node.
	Nodes() []Node

	// Layers returns the layers this component occupies.
	Layers() []Layer

	// AbsBoxes returns the abstract boxes the solver operates on. graph
	// is provided so components can inspect their neighbors (e.g. a Wire
	// widening its endpoint pads against perpendicular wires).
	AbsBoxes(graph *Graph) []AbsBox

	// Geometry returns the final physical shapes once the solver has
	// produced coordinate maps.
	Geometry(graph *Graph, xMap, yMap map[int]float64) []LayerRect

	// ViaBottomLayer and ViaTopLayer optionally advertise the layers a
	// Via may query when sizing landing pads for wires attaching at a
	// shared node. ok is false when the component makes no such
	// advertisement (e.g. Via itself).
	ViaBottomLayer() (layer Layer, ok bool)
	ViaTopLayer() (layer Layer, ok bool)

	// IsHorizontal reports whether the first and last node share IY.
	IsHorizontal() bool
}

// GeometryForBoxes folds a list of abstract boxes through the given
// coordinate maps, the default implementation of Component.Geometry shared
// by every concrete component that doesn't need per-cut detail (Wire,
// MOSFET; Via overrides it to materialize the farm-via array).
func GeometryForBoxes(xMap, yMap map[int]float64, boxes []AbsBox) []LayerRect {
	out := make([]LayerRect, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, LayerRect{Layer: b.Layer, Rect: b.Fold(xMap, yMap)})
	}
	return out
}

// isHorizontalNodes reports whether the first and last node of an ordered,
// collinear node list share IY. It is the shared implementation behind
// Component.IsHorizontal for multi-node components.
func isHorizontalNodes(nodes []Node) bool {
	if len(nodes) == 0 {
		return true
	}
	return nodes[0].IY == nodes[len(nodes)-1].IY
}

// wireCapable is a capability query satisfied only by *Wire. Components
// (Wire's perpendicular widening) use AsWire instead of a runtime type switch, per
// spec.md's DESIGN NOTES ("expose it through a small capability query
// rather than runtime type tests").
type wireCapable interface {
	AsWire() *Wire
}

// AsWire returns c as a *Wire if it is one, generalizing the perpendicular-
// widening specialization without a type assertion scattered through
// callers.
func AsWire(c Component) (*Wire, bool) {
	wc, ok := c.(wireCapable)
	if !ok {
		return nil, false
	}
	return wc.AsWire(), true
}

// widthCapable is satisfied by any Component carrying a single uniform
// width a Via can read when sizing a landing pad against it: a Wire's own
// width, or a MOSFET's source/drain width at the terminal it attaches
// from. Mirrors the original's generic `component.width` attribute read
// in via.py's get_widths, rather than restricting via landing-pad sizing
// to wires alone.
type widthCapable interface {
	viaAttachWidth() float64
}

// widthOf returns c's width and whether it exposes one.
func widthOf(c Component) (float64, bool) {
	wc, ok := c.(widthCapable)
	if !ok {
		return 0, false
	}
	return wc.viaAttachWidth(), true
}
