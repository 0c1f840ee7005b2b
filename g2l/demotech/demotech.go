// Package demotech is a sample technology definition for g2l, modeled on a
// representative open-source 130nm process stack: 16 generic layers from
// nwell through met5, the spacing rules that commonly constrain them, and a
// contact/via stack that lands on whatever wires attach and fills its cut
// area with a farm-via array.
package demotech

import (
	"fmt"
	"math"

	"github.com/dhconnelly/go-g2l/g2l"
)

// Layer ids, dense and in process stack order.
const (
	Nwell g2l.Layer = iota
	Diff
	Tap
	Poly
	Licon
	Li
	Mcon
	Met1
	Via1
	Met2
	Via2
	Met3
	Via3
	Met4
	Via4
	Met5
)

var layerNames = map[g2l.Layer]string{
	Nwell: "nwell", Diff: "diff", Tap: "tap", Poly: "poly",
	Licon: "licon", Li: "li", Mcon: "mcon", Met1: "met1",
	Via1: "via1", Met2: "met2", Via2: "via2", Met3: "met3",
	Via3: "via3", Met4: "met4", Via4: "via4", Met5: "met5",
}

// Rules implements g2l.Rules.
type Rules struct{}

var _ g2l.Rules = Rules{}

// Layer translates a generic layer name into the demotech layer id.
func (Rules) Layer(genericName string) (g2l.Layer, error) {
	switch genericName {
	case "diff":
		return Diff, nil
	case "nwell":
		return Nwell, nil
	case "contact":
		return Licon, nil
	case "poly":
		return Poly, nil
	case "metal1":
		return Li, nil
	case "via1":
		return Mcon, nil
	case "metal2":
		return Met1, nil
	case "via2":
		return Via1, nil
	case "metal3":
		return Met2, nil
	case "via3":
		return Via2, nil
	case "metal4":
		return Met3, nil
	case "via4":
		return Via3, nil
	case "metal5":
		return Met4, nil
	default:
		return 0, fmt.Errorf("%w: %q", g2l.ErrUnknownLayerName, genericName)
	}
}

func orderedPair(l1, l2 g2l.Layer) (g2l.Layer, g2l.Layer) {
	if l1 > l2 {
		return l2, l1
	}
	return l1, l2
}

// Space returns the minimum spacing for a handful of same-layer and
// poly/diff/licon cross-layer constraints; unlisted pairs are
// unconstrained.
func (Rules) Space(l1, l2 g2l.Layer) (float64, bool) {
	lo, hi := orderedPair(l1, l2)
	switch {
	case lo == Diff && hi == Diff:
		return 0.27, true
	case lo == Poly && hi == Poly:
		return 0.21, true
	case lo == Licon && hi == Licon:
		return 0.17, true
	case lo == Licon && hi == Poly, lo == Poly && hi == Licon:
		return 0.05, true
	case lo == Diff && hi == Poly, lo == Poly && hi == Diff:
		return 0.075, true
	case lo == Li && hi == Li:
		return 0.17, true
	case lo == Mcon && hi == Mcon:
		return 0.17, true
	case lo == Met1 && hi == Met1:
		return 0.14, true
	case lo == Via1 && hi == Via1:
		return 0.17, true
	case lo == Met2 && hi == Met2:
		return 0.2, true
	case lo == Via2 && hi == Via2:
		return 0.2, true
	case lo == Met3 && hi == Met3:
		return 0.3, true
	default:
		return 0, false
	}
}

// DefaultWireWidth returns a default width for the wire-bearing layers.
func (Rules) DefaultWireWidth(layer g2l.Layer) (float64, bool) {
	switch layer {
	case Poly:
		return 0.15, true
	case Li:
		return 0.17, true
	case Met1:
		return 0.14, true
	case Met2:
		return 0.14, true
	default:
		return 0, false
	}
}

// CreateLayers registers every demotech layer in sink by its generic name.
func (Rules) CreateLayers(sink g2l.Sink) (map[g2l.Layer]g2l.LayerHandle, error) {
	out := make(map[g2l.Layer]g2l.LayerHandle, len(layerNames))
	for layer, name := range layerNames {
		handle, err := sink.CreateLayer(name)
		if err != nil {
			return nil, fmt.Errorf("demotech: creating layer %q: %w", name, err)
		}
		out[layer] = handle
	}
	return out, nil
}

// Vias implements g2l.Vias: a contact/via stack sized from whatever wires
// attach at each side, with the cut area filled by a farm-via array.
type Vias struct{}

var _ g2l.Vias = Vias{}

func (v Vias) Boxes(bottomLayer, topLayer g2l.Layer, bottomWidths, topWidths g2l.SideWidths) (bottomPad, cutHull, topPad g2l.Rect) {
	bottomPad, topPad = topBottomBoxes(bottomLayer, topLayer, bottomWidths, topWidths)

	cutHull = g2l.Rect{}
	for _, cut := range v.ViaGeometry(bottomLayer, topLayer, bottomWidths, topWidths) {
		cutHull = cutHull.Union(cut)
	}
	return bottomPad, cutHull, topPad
}

func (Vias) ViaGeometry(bottomLayer, topLayer g2l.Layer, bottomWidths, topWidths g2l.SideWidths) []g2l.Rect {
	viaSize, viaSpace := 0.17, 0.17
	if bottomLayer == Met2 {
		viaSize, viaSpace = 0.2, 0.2
	}
	enclosure := 0.05

	bottomPad, topPad := topBottomBoxes(bottomLayer, topLayer, bottomWidths, topWidths)
	overlap := bottomPad.Intersect(topPad).Enlarge(-enclosure, -enclosure)

	return createFarmVia(viaSize, viaSpace, overlap)
}

// topBottomBoxes computes the minimum-size landing pads for the bottom and
// top layers, widening sides that connect vertically versus horizontally
// and applying technology-specific minimums when li is the top layer (a
// poly bottom pad is then floored as well) or the bottom layer, mirroring
// sky130's licon/mcon landing-pad rules. Vias between other layers get no
// minimum pad size.
func topBottomBoxes(bottomLayer, topLayer g2l.Layer, bottomWidths, topWidths g2l.SideWidths) (bottomBox, topBox g2l.Rect) {
	bw := maxSide(bottomWidths, g2l.SideBottom, g2l.SideTop)
	tw := maxSide(topWidths, g2l.SideBottom, g2l.SideTop)
	if bw == 0 {
		bw = tw
	}
	if tw == 0 {
		tw = bw
	}

	bh := maxSide(bottomWidths, g2l.SideLeft, g2l.SideRight)
	th := maxSide(topWidths, g2l.SideLeft, g2l.SideRight)
	if bh == 0 {
		bh = th
	}
	if th == 0 {
		th = bh
	}

	switch {
	case topLayer == Li:
		if bottomLayer == Poly {
			bw = math.Max(0.27, bw)
			bh = math.Max(0.27, bh)
		}
		_, leftOK := topWidths.Width(g2l.SideLeft)
		_, rightOK := topWidths.Width(g2l.SideRight)
		if !leftOK && !rightOK {
			th = math.Max(0.27, th)
		} else {
			tw = math.Max(0.27, tw)
		}
	case bottomLayer == Li:
		tw = math.Max(0.3, tw)
		th = math.Max(0.3, th)
		_, leftOK := bottomWidths.Width(g2l.SideLeft)
		_, rightOK := bottomWidths.Width(g2l.SideRight)
		if !leftOK && !rightOK {
			bh = math.Max(0.27, bh)
		} else {
			bw = math.Max(0.27, bw)
		}
	}

	bottomBox = g2l.NewRect(-0.5*bw, -0.5*bh, 0.5*bw, 0.5*bh)
	topBox = g2l.NewRect(-0.5*tw, -0.5*th, 0.5*tw, 0.5*th)
	return bottomBox, topBox
}

// maxSide returns the larger of the two named sides' widths, treating an
// absent side as zero.
func maxSide(widths g2l.SideWidths, a, b g2l.Side) float64 {
	wa, _ := widths.Width(a)
	wb, _ := widths.Width(b)
	return math.Max(wa, wb)
}

// createFarmVia tiles box with a centered array of viaSize squares spaced
// viaSpace apart, always placing at least one via.
func createFarmVia(viaSize, viaSpace float64, box g2l.Rect) []g2l.Rect {
	nx := int(math.Floor(1e-10 + (box.Width()+viaSpace)/(viaSize+viaSpace)))
	ny := int(math.Floor(1e-10 + (box.Height()+viaSpace)/(viaSize+viaSpace)))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	geometry := make([]g2l.Rect, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			x := (float64(i) - float64(nx-1)*0.5) * (viaSize + viaSpace)
			y := (float64(j) - float64(ny-1)*0.5) * (viaSize + viaSpace)
			geometry = append(geometry, g2l.NewRect(-0.5*viaSize, -0.5*viaSize, 0.5*viaSize, 0.5*viaSize).Translate(x, y))
		}
	}
	return geometry
}

// Mosfets implements g2l.Mosfets with representative planar device
// parameters.
type Mosfets struct{}

var _ g2l.Mosfets = Mosfets{}

func (Mosfets) SourceDrainActiveWidth() float64 { return 0.27 }
func (Mosfets) GateExtension() float64          { return 0.13 }
func (Mosfets) DefaultMOSLength() float64       { return 0.15 }
func (Mosfets) MinNMOSWidth() float64           { return 0.4 }
func (Mosfets) MinPMOSWidth() float64           { return 0.25 }
func (Mosfets) PolyLayer() g2l.Layer            { return Poly }
func (Mosfets) ActiveLayer() g2l.Layer          { return Diff }

// TechContext returns the complete demotech TechContext.
func TechContext() g2l.TechContext {
	return g2l.TechContext{Rules: Rules{}, Vias: Vias{}, Mosfets: Mosfets{}}
}
