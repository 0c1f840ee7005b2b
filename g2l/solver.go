package g2l

import (
	"log"
)

// shieldEpsilon absorbs floating-point noise when comparing footprint
// extents for the shielding predicate, matching the tolerance the original
// solver uses around its overlap comparisons.
const shieldEpsilon = 1e-10

// SolverParams configures Solve. DefaultSolverParams returns the values the
// original compactor defaults to.
type SolverParams struct {
	// InitialGridX and InitialGridY scale the starting coordinate guess
	// assigned to grid index i, before the first compaction pass.
	InitialGridX, InitialGridY float64

	// Threshold is the max-norm convergence delta below which Solve stops
	// iterating.
	Threshold float64

	// MaxIter caps the number of alternating sweep pairs performed.
	MaxIter int

	// HorizontalFirst selects whether each iteration compacts horizontally
	// then vertically, or the reverse.
	HorizontalFirst bool

	// Logger receives progress messages. A nil Logger disables logging.
	Logger *log.Logger
}

// DefaultSolverParams returns the conventional starting parameters: a
// coarse 10-unit initial grid, a tight max-norm threshold, and up to 10
// alternating iterations, logging disabled.
func DefaultSolverParams() SolverParams {
	return SolverParams{
		InitialGridX:    10.0,
		InitialGridY:    10.0,
		Threshold:       1e-3,
		MaxIter:         10,
		HorizontalFirst: true,
	}
}

// Solver assigns physical coordinates to a Graph's grid indices by
// alternating horizontal and vertical compaction sweeps.
type Solver struct {
	graph  *Graph
	xIdx   []int
	yIdx   []int
	xMap   map[int]float64
	yMap   map[int]float64
	params SolverParams
}

// NewSolver builds a Solver over graph using params.
func NewSolver(graph *Graph, params SolverParams) *Solver {
	return &Solver{
		graph:  graph,
		xIdx:   graph.XIndexes(),
		yIdx:   graph.YIndexes(),
		params: params,
	}
}

// Result reports how a Solve call concluded.
type Result struct {
	// Converged is false if MaxIter iterations elapsed before the
	// max-norm delta fell below Threshold.
	Converged  bool
	Iterations int
	FinalDelta float64
}

// Solve runs the alternating compaction sweeps until the coordinate maps
// stop moving by more than Threshold (max-norm) or MaxIter iterations
// elapse. Calling Solve repeatedly re-solves from scratch; XMap and YMap
// reflect the latest call.
func (s *Solver) Solve() Result {
	s.xMap = make(map[int]float64, len(s.xIdx))
	for _, i := range s.xIdx {
		s.xMap[i] = s.params.InitialGridX * float64(i)
	}
	s.yMap = make(map[int]float64, len(s.yIdx))
	for _, i := range s.yIdx {
		s.yMap[i] = s.params.InitialGridY * float64(i)
	}

	s.logf("solving constraints: initial x=%v y=%v", s.xMap, s.yMap)

	delta := s.params.Threshold * 2
	niter := 0
	for delta > s.params.Threshold && niter < s.params.MaxIter {
		xPrev := cloneMap(s.xMap)
		yPrev := cloneMap(s.yMap)

		first, second := Horizontal, Vertical
		if !s.params.HorizontalFirst {
			first, second = Vertical, Horizontal
		}
		s.computeCoordinates(first)
		s.computeCoordinates(second)

		niter++
		delta = max(maxAbsDelta(xPrev, s.xMap), maxAbsDelta(yPrev, s.yMap))

		s.logf("iteration %d: x=%v y=%v delta=%.12g (threshold %.12g)", niter, s.xMap, s.yMap, delta, s.params.Threshold)
	}

	if delta <= s.params.Threshold {
		s.logf("solver stopped after %d iterations: delta within threshold", niter)
	} else {
		s.logf("solver stopped after %d iterations: iteration limit reached", niter)
	}

	return Result{
		Converged:  niter < s.params.MaxIter,
		Iterations: niter,
		FinalDelta: delta,
	}
}

// XMap returns the most recently solved x-coordinate map, keyed by grid
// index.
func (s *Solver) XMap() map[int]float64 { return s.xMap }

// YMap returns the most recently solved y-coordinate map, keyed by grid
// index.
func (s *Solver) YMap() map[int]float64 { return s.yMap }

func (s *Solver) logf(format string, args ...any) {
	if s.params.Logger != nil {
		s.params.Logger.Printf(format, args...)
	}
}

func cloneMap(m map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func maxAbsDelta(prev, cur map[int]float64) float64 {
	d := 0.0
	for i, v := range cur {
		diff := v - prev[i]
		if diff < 0 {
			diff = -diff
		}
		d = max(d, diff)
	}
	return d
}

// computeCoordinates performs one compaction sweep along axis, assigning
// every grid index on that axis the minimum coordinate consistent with the
// technology's spacing rules against every box already placed.
//
// Unlike the original line-by-line algorithm, which re-derives the current
// set of boxes by scanning every (leading, orthogonal) node pair, this
// collects each component's boxes once per sweep index and filters by
// leading index directly; a component whose box spans multiple nodes
// sharing the same leading index is therefore counted exactly once instead
// of once per such node.
func (s *Solver) computeCoordinates(axis Axis) {
	var prevBoxes []AbsBox
	minCoord := 0.0

	leadIdx := s.xIdx
	if !axis.IsHorizontal() {
		leadIdx = s.yIdx
	}

	for _, i := range leadIdx {
		var currentBoxes []AbsBox
		for _, c := range s.graph.Components() {
			for _, b := range c.AbsBoxes(s.graph) {
				if axis.LeadingIndex(&b) == i {
					currentBoxes = append(currentBoxes, b)
				}
			}
		}

		if len(currentBoxes) > 0 {
			minCoord = 0.0

			for _, cb := range currentBoxes {
				for _, pb := range prevBoxes {
					lo, hi := pb.Layer, cb.Layer
					if lo > hi {
						lo, hi = hi, lo
					}
					space, ok := s.graph.Tech.Rules.Space(lo, hi)
					if !ok {
						continue
					}
					coord, ok := s.computeCoord(axis, space, pb, cb)
					if ok && coord > minCoord && !s.boxIsShielded(axis, cb, pb, prevBoxes) {
						minCoord = coord
					}
				}
			}
		}

		axis.setCoord(s.xMap, s.yMap, i, minCoord)
		prevBoxes = append(prevBoxes, currentBoxes...)
	}
}

// setCoord assigns the resolved coordinate for grid index i on this axis.
func (a Axis) setCoord(xMap, yMap map[int]float64, i int, v float64) {
	if a.horizontal {
		xMap[i] = v
	} else {
		yMap[i] = v
	}
}

// computeCoord returns the minimum coordinate b2's leading-axis index must
// take so that b2, once placed, clears b1 (already placed) by at least
// space, or ok=false if b1 and b2 cannot constrain each other (b1 does not
// precede b2 along the axis, or they never overlap on the perpendicular
// axis).
func (s *Solver) computeCoord(axis Axis, space float64, b1, b2 AbsBox) (float64, bool) {
	if axis.TrailingIndex(&b1) >= axis.LeadingIndex(&b2) {
		return 0, false
	}

	dbox1 := b1.Fold(s.xMap, s.yMap).Enlarge(space, space)
	dbox2 := axis.FoldPending(b2, s.xMap, s.yMap)

	if axis.OrthLo(dbox1) > axis.OrthHi(dbox2)-shieldEpsilon || axis.OrthHi(dbox1) < axis.OrthLo(dbox2)+shieldEpsilon {
		return 0, false
	}

	return axis.MainHi(dbox1) - axis.MainLo(dbox2), true
}

// boxIsShielded reports whether some other already-placed box ob fully
// covers the perpendicular overlap between b and wrt and shares a layer
// with either of them and sits between wrt and b along the sweep axis,
// meaning ob (not wrt) is the binding constraint on b.
func (s *Solver) boxIsShielded(axis Axis, b, wrt AbsBox, otherBoxes []AbsBox) bool {
	paraLo := max(axis.ParaLo(&b), axis.ParaLo(&wrt))
	paraHi := min(axis.ParaHi(&b), axis.ParaHi(&wrt))
	orthLo := max(axis.OrthLo(b.Footprint), axis.OrthLo(wrt.Footprint))
	orthHi := min(axis.OrthHi(b.Footprint), axis.OrthHi(wrt.Footprint))

	for _, ob := range otherBoxes {
		if axis.ParaLo(&ob) > paraLo || axis.ParaHi(&ob) < paraHi {
			continue
		}
		if b.Layer != ob.Layer && wrt.Layer != ob.Layer {
			continue
		}
		if axis.TrailingIndex(&ob) < axis.LeadingIndex(&b) {
			continue
		}
		if axis.OrthLo(ob.Footprint) > orthLo+shieldEpsilon || axis.OrthHi(ob.Footprint) < orthHi-shieldEpsilon {
			continue
		}
		return true
	}
	return false
}
