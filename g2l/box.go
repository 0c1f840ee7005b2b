package g2l

import "fmt"

// Layer is a dense, nonnegative integer identifying a conductor or cut
// layer. Ordering carries no meaning except within a via stack.
type Layer int

// AbsBox is the fundamental geometric primitive the solver consumes: a
// shape with grid-index extents and a footprint rectangle normalized to the
// grid origin. It becomes physical geometry only when Fold is applied with
// the solver's coordinate maps.
type AbsBox struct {
	// IX1, IY1, IX2, IY2 are the inclusive grid-index extents. IX1<=IX2
	// and IY1<=IY2 always hold.
	IX1, IY1, IX2, IY2 int

	// Footprint is the real-valued rectangle in the footprint frame; see
	// Rect.Fold for how it becomes a physical rectangle.
	Footprint Rect

	// Layer is the layer this box sits on.
	Layer Layer
}

// NewAbsBox validates and builds an AbsBox. It returns an error if the
// grid-index extents are inverted, which would indicate a construction bug
// in a Component rather than a user-supplied design error.
func NewAbsBox(ix1, iy1, ix2, iy2 int, footprint Rect, layer Layer) (AbsBox, error) {
	if ix1 > ix2 || iy1 > iy2 {
		return AbsBox{}, fmt.Errorf("g2l: invalid box extents (%d,%d)..(%d,%d)", ix1, iy1, ix2, iy2)
	}
	return AbsBox{IX1: ix1, IY1: iy1, IX2: ix2, IY2: iy2, Footprint: footprint, Layer: layer}, nil
}

// Fold maps this box's footprint into physical space given coordinate maps
// for the x and y grid indices, applying Rect.Fold with the coordinates of
// the box's grid corners: both corners translate by the same amount when
// IX1==IX2 and IY1==IY2, and the box stretches otherwise.
func (b AbsBox) Fold(xMap, yMap map[int]float64) Rect {
	return b.Footprint.Fold(xMap[b.IX1], yMap[b.IY1], xMap[b.IX2], yMap[b.IY2])
}
