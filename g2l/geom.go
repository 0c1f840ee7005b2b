package g2l

// Pt is a 2-D point in physical (real-valued) space, in the technology's
// native length unit.
type Pt struct {
	X, Y float64
}

// Point is a convenience constructor that keeps call sites readable.
func Point(x, y float64) Pt {
	return Pt{X: x, Y: y}
}

// Rect is an axis-aligned real-valued rectangle. Left may exceed Right and
// Bottom may exceed Top for a degenerate (zero-area or inverted) box; most
// operations tolerate this, matching the footprint-frame boxes of AbsBox.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// NewRect builds a Rect from its four edges.
func NewRect(left, bottom, right, top float64) Rect {
	return Rect{Left: left, Bottom: bottom, Right: right, Top: top}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Top-Bottom.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// Enlarge expands each edge outward by dx horizontally and dy vertically.
// Negative values shrink the rectangle.
func (r Rect) Enlarge(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left - dx,
		Bottom: r.Bottom - dy,
		Right:  r.Right + dx,
		Top:    r.Top + dy,
	}
}

// Intersect returns the overlap of r and o. The result may be empty or
// inverted (Left>Right or Bottom>Top) if the two rectangles do not overlap;
// callers that need an overlap test should check that explicitly.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Bottom: max(r.Bottom, o.Bottom),
		Right:  min(r.Right, o.Right),
		Top:    min(r.Top, o.Top),
	}
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Bottom: min(r.Bottom, o.Bottom),
		Right:  max(r.Right, o.Right),
		Top:    max(r.Top, o.Top),
	}
}

// Translate shifts every edge of r by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Bottom: r.Bottom + dy,
		Right:  r.Right + dx,
		Top:    r.Top + dy,
	}
}

// Overlaps reports whether r and o share any area (touching edges do not
// count as overlap).
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Bottom < o.Top && o.Bottom < r.Top
}

// Fold is the only operation that turns a footprint-frame rectangle into a
// physical one: each edge is shifted by the corresponding grid coordinate,
// per spec.md's "footprint ⊕ (xL,yB,xR,yT)" operator. A grid-spanning box
// (xL != xR or yB != yT) stretches as its grid corners move; a single-grid
// box only translates.
func (r Rect) Fold(xL, yB, xR, yT float64) Rect {
	return Rect{
		Left:   r.Left + xL,
		Bottom: r.Bottom + yB,
		Right:  r.Right + xR,
		Top:    r.Top + yT,
	}
}

