package g2l

import "fmt"

// MOSFET is a classical planar transistor spanning three grid nodes: a gate
// and a source/drain pair, each on its own layer (poly and active).
type MOSFET struct {
	GateNode, SourceNode, DrainNode Node
	Width, Length                   float64

	polyLayer, activeLayer Layer
}

// NewMOSFET constructs a MOSFET. gateNode must share a row (IY) with both
// sourceNode and drainNode, matching the original's row-aligned device
// layout; width and length must be positive. The poly and active layers are
// taken from tech.Mosfets rather than a global singleton.
func NewMOSFET(tech TechContext, gateNode, sourceNode, drainNode Node, width, length float64) (*MOSFET, error) {
	if gateNode.IY != sourceNode.IY || gateNode.IY != drainNode.IY {
		return nil, fmt.Errorf("%w: gate=(%d,%d) source=(%d,%d) drain=(%d,%d)",
			ErrNonAxisAlignedMOSFET, gateNode.IX, gateNode.IY, sourceNode.IX, sourceNode.IY, drainNode.IX, drainNode.IY)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidWidth, width)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidLength, length)
	}
	return &MOSFET{
		GateNode:    gateNode,
		SourceNode:  sourceNode,
		DrainNode:   drainNode,
		Width:       width,
		Length:      length,
		polyLayer:   tech.Mosfets.PolyLayer(),
		activeLayer: tech.Mosfets.ActiveLayer(),
	}, nil
}

// sourceDrainOrdered returns SourceNode and DrainNode in ascending Node
// order, so the active-area box always spans from the lexically lesser
// node to the greater one regardless of which terminal the caller labeled
// source or drain.
func (m *MOSFET) sourceDrainOrdered() (lo, hi Node) {
	if m.DrainNode.Less(m.SourceNode) {
		return m.DrainNode, m.SourceNode
	}
	return m.SourceNode, m.DrainNode
}

// Nodes implements Component, returning the lesser source/drain node, the
// gate, and the greater source/drain node, in that grid order.
func (m *MOSFET) Nodes() []Node {
	lo, hi := m.sourceDrainOrdered()
	return []Node{lo, m.GateNode, hi}
}

// Layers implements Component.
func (m *MOSFET) Layers() []Layer { return []Layer{m.activeLayer, m.polyLayer} }

// ViaBottomLayer implements Component: a MOSFET advertises its active layer
// as a landing surface for a Via sharing one of its nodes.
func (m *MOSFET) ViaBottomLayer() (Layer, bool) { return m.activeLayer, true }

// viaAttachWidth satisfies the widthCapable capability query: a MOSFET
// uses the same width for both its source and drain terminals.
func (m *MOSFET) viaAttachWidth() float64 { return m.Width }

// ViaTopLayer implements Component. A MOSFET never advertises a top
// stacking layer; its poly gate does not receive vias in this model.
func (m *MOSFET) ViaTopLayer() (Layer, bool) { return 0, false }

// IsHorizontal implements Component.
func (m *MOSFET) IsHorizontal() bool { return isHorizontalNodes(m.Nodes()) }

// AbsBoxes implements Component, returning the active-area box spanning the
// source/drain extent and the poly gate box centered on the gate node.
func (m *MOSFET) AbsBoxes(graph *Graph) []AbsBox {
	tech := graph.Tech.Mosfets

	sdWidth := tech.SourceDrainActiveWidth()
	sdBox := NewRect(-0.5*sdWidth, -0.5*m.Width, 0.5*sdWidth, 0.5*m.Width)

	gateExt := tech.GateExtension()
	gateBox := NewRect(0, 0, 0, 0).Enlarge(0.5*m.Length, 0.5*m.Width+gateExt)

	lo, hi := m.sourceDrainOrdered()

	activeBox, err := NewAbsBox(lo.IX, lo.IY, hi.IX, hi.IY, sdBox, m.activeLayer)
	if err != nil {
		panic(err)
	}
	gateAbsBox, err := NewAbsBox(m.GateNode.IX, m.GateNode.IY, m.GateNode.IX, m.GateNode.IY, gateBox, m.polyLayer)
	if err != nil {
		panic(err)
	}
	return []AbsBox{activeBox, gateAbsBox}
}

// Geometry implements Component using the default fold of AbsBoxes.
func (m *MOSFET) Geometry(graph *Graph, xMap, yMap map[int]float64) []LayerRect {
	return GeometryForBoxes(xMap, yMap, m.AbsBoxes(graph))
}
