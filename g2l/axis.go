package g2l

// Axis parameterizes the solver's sweep direction so the compaction and
// shielding logic is written once instead of twice. Rather than the boolean-
// dispatched `ixory1`/`iyorx1`/... accessor family of the original
// implementation, each Axis value exposes the six accessors spec.md's
// DESIGN NOTES calls for directly.
type Axis struct {
	horizontal bool
}

// Horizontal sweeps grid columns left to right, assigning x_map.
var Horizontal = Axis{horizontal: true}

// Vertical sweeps grid rows bottom to top, assigning y_map.
var Vertical = Axis{horizontal: false}

// IsHorizontal reports whether this is the horizontal (x-assigning) axis.
func (a Axis) IsHorizontal() bool { return a.horizontal }

// Other returns the axis perpendicular to a.
func (a Axis) Other() Axis { return Axis{horizontal: !a.horizontal} }

// LeadingIndex is the grid index at which b starts along the sweep
// direction: IX1 for Horizontal, IY1 for Vertical.
func (a Axis) LeadingIndex(b *AbsBox) int {
	if a.horizontal {
		return b.IX1
	}
	return b.IY1
}

// TrailingIndex is the grid index at which b ends along the sweep
// direction: IX2 for Horizontal, IY2 for Vertical.
func (a Axis) TrailingIndex(b *AbsBox) int {
	if a.horizontal {
		return b.IX2
	}
	return b.IY2
}

// ParaLo is b's low grid index on the axis perpendicular to the sweep
// (the "parallel" extent that shielding and overlap checks compare).
func (a Axis) ParaLo(b *AbsBox) int {
	if a.horizontal {
		return b.IY1
	}
	return b.IX1
}

// ParaHi is b's high grid index on the axis perpendicular to the sweep.
func (a Axis) ParaHi(b *AbsBox) int {
	if a.horizontal {
		return b.IY2
	}
	return b.IX2
}

// OrthLo is the low footprint edge on the axis perpendicular to the sweep:
// Bottom for Horizontal, Left for Vertical.
func (a Axis) OrthLo(r Rect) float64 {
	if a.horizontal {
		return r.Bottom
	}
	return r.Left
}

// OrthHi is the high footprint edge on the axis perpendicular to the sweep:
// Top for Horizontal, Right for Vertical.
func (a Axis) OrthHi(r Rect) float64 {
	if a.horizontal {
		return r.Top
	}
	return r.Right
}

// MainLo is the low footprint edge along the sweep direction itself: Left
// for Horizontal, Bottom for Vertical.
func (a Axis) MainLo(r Rect) float64 {
	if a.horizontal {
		return r.Left
	}
	return r.Bottom
}

// MainHi is the high footprint edge along the sweep direction itself: Right
// for Horizontal, Top for Vertical.
func (a Axis) MainHi(r Rect) float64 {
	if a.horizontal {
		return r.Right
	}
	return r.Top
}

// Coord returns the assigned coordinate for grid index i along this axis,
// looked up from the appropriate map.
func (a Axis) Coord(xMap, yMap map[int]float64, i int) float64 {
	if a.horizontal {
		return xMap[i]
	}
	return yMap[i]
}

// FoldPending folds b's footprint using already-resolved coordinates on the
// axis perpendicular to the sweep, while treating b's own not-yet-assigned
// leading-axis coordinate as zero. This is the partial fold the compaction
// pass applies to the box currently being placed, whose leading-axis
// coordinate is exactly what the pass is solving for.
func (a Axis) FoldPending(b AbsBox, xMap, yMap map[int]float64) Rect {
	if a.horizontal {
		return b.Footprint.Fold(0, yMap[b.IY1], 0, yMap[b.IY2])
	}
	return b.Footprint.Fold(xMap[b.IX1], 0, xMap[b.IX2], 0)
}
