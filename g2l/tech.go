package g2l

// Side indexes the four directions a wire can attach to a Via from, in the
// order spec.md §4.3 defines: left, bottom, right, top.
type Side int

const (
	SideLeft Side = iota
	SideBottom
	SideRight
	SideTop
)

// SideWidths holds the width of whatever wire attaches from each Side, or
// nil where no wire attaches from that side at that via level.
type SideWidths [4]*float64

// Width returns the width attached at s, and whether one is present.
func (s SideWidths) Width(side Side) (float64, bool) {
	if s[side] == nil {
		return 0, false
	}
	return *s[side], true
}

// WidthPtr wraps a width value for storage in a SideWidths.
func WidthPtr(w float64) *float64 {
	return &w
}

// Rules is the technology-rules interface: spacing, layer translation, and
// wire defaults. Implementations are pure, stateless queries; the core
// never stores rule state of its own.
type Rules interface {
	// Layer translates a generic layer name ("diff", "poly", "contact",
	// "metal1", "via1", "metal2", ...) into this technology's integer
	// layer id. Returns ErrUnknownLayerName for an unrecognized name.
	Layer(genericName string) (Layer, error)

	// Space returns the minimum separation required between layers l1
	// and l2 (in either order), or ok=false if the pair is unconstrained.
	Space(l1, l2 Layer) (space float64, ok bool)

	// DefaultWireWidth returns the default wire width for layer, or
	// ok=false if the technology defines none.
	DefaultWireWidth(layer Layer) (width float64, ok bool)

	// CreateLayers creates the output layers needed to hold every layer
	// this technology defines inside sink, returning a lookup from this
	// package's Layer ids to sink-specific layer handles.
	CreateLayers(sink Sink) (map[Layer]LayerHandle, error)
}

// Vias is the technology-vias interface: landing-pad sizing and cut
// geometry for a via stack.
type Vias interface {
	// Boxes returns the coarse geometry for a via between bottomLayer and
	// topLayer: the bottom landing pad, a hull enclosing every individual
	// cut (used by the solver for efficient spacing checks), and the top
	// landing pad. bottomWidths and topWidths give the widths of wires
	// attached at each Side and level; a nil entry means no connection
	// from that side. All three boxes are centered at the origin.
	Boxes(bottomLayer, topLayer Layer, bottomWidths, topWidths SideWidths) (bottomPad, cutHull, topPad Rect)

	// ViaGeometry returns the detailed cut rectangles (e.g. a farm-via
	// array), each centered at the origin, for the same via stack Boxes
	// would summarize with a single hull.
	ViaGeometry(bottomLayer, topLayer Layer, bottomWidths, topWidths SideWidths) []Rect
}

// Mosfets is the technology-mosfets interface: planar MOSFET dimensions.
type Mosfets interface {
	SourceDrainActiveWidth() float64
	GateExtension() float64
	DefaultMOSLength() float64
	MinNMOSWidth() float64
	MinPMOSWidth() float64
	PolyLayer() Layer
	ActiveLayer() Layer
}

// TechContext bundles the three technology collaborators into a single
// explicit value, replacing the original implementation's process-global
// `Tech` singleton per spec.md's DESIGN NOTES: it is passed into NewGraph
// and never stored as hidden package state.
type TechContext struct {
	Rules   Rules
	Vias    Vias
	Mosfets Mosfets
}

// LayerHandle is an opaque, sink-specific handle for a created output
// layer; the core never inspects it.
type LayerHandle interface{}

// Sink is the layout sink interface: the host-provided output target. The
// core calls only these methods.
type Sink interface {
	// CreateLayer registers an output layer named name and returns a
	// handle for it. Technologies name layers however suits their output
	// format (a GDS stream/datatype pair, a DXF layer name, ...).
	CreateLayer(name string) (LayerHandle, error)

	// CreateCell creates (or returns) a top-level cell with the given
	// name.
	CreateCell(name string) (Cell, error)

	// Write persists the sink's accumulated design to path.
	Write(path string) error
}

// Cell receives shapes on specific layer handles.
type Cell interface {
	InsertShape(layer LayerHandle, rect Rect) error
}
