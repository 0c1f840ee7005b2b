package g2l

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	layerA Layer = iota
	layerB
)

// fakeRules is a minimal Rules implementation for solver tests: a spacing
// table keyed by an ordered layer pair, with Layer/DefaultWireWidth/
// CreateLayers left unused by these tests.
type fakeRules struct {
	space map[[2]Layer]float64
}

func newFakeRules() *fakeRules { return &fakeRules{space: map[[2]Layer]float64{}} }

func (r *fakeRules) withSpace(l1, l2 Layer, space float64) *fakeRules {
	if l1 > l2 {
		l1, l2 = l2, l1
	}
	r.space[[2]Layer{l1, l2}] = space
	return r
}

func (r *fakeRules) Layer(name string) (Layer, error) { return 0, ErrUnknownLayerName }
func (r *fakeRules) DefaultWireWidth(layer Layer) (float64, bool) { return 0, false }
func (r *fakeRules) CreateLayers(sink Sink) (map[Layer]LayerHandle, error) { return nil, nil }

func (r *fakeRules) Space(l1, l2 Layer) (float64, bool) {
	if l1 > l2 {
		l1, l2 = l2, l1
	}
	space, ok := r.space[[2]Layer{l1, l2}]
	return space, ok
}

func testSolverTech(rules Rules) TechContext {
	return TechContext{Rules: rules}
}

// TestSolverSeparatesOverlappingWiresVertically covers the "two parallel
// wires" scenario: two horizontal wires on the same layer, one directly
// above the other, must be pulled apart by at least the technology's
// minimum spacing once the solver converges.
func TestSolverSeparatesOverlappingWiresVertically(t *testing.T) {
	rules := newFakeRules().withSpace(layerA, layerA, 0.5)
	tech := testSolverTech(rules)
	graph := NewGraph(tech)

	lower, err := NewWire(0.2, layerA, N(0, 0), N(2, 0))
	require.NoError(t, err)
	upper, err := NewWire(0.2, layerA, N(0, 1), N(2, 1))
	require.NoError(t, err)
	graph.Add(lower)
	graph.Add(upper)

	solver := NewSolver(graph, DefaultSolverParams())
	result := solver.Solve()
	require.True(t, result.Converged)

	lowerBox := lower.AbsBoxes(graph)[0].Fold(solver.XMap(), solver.YMap())
	upperBox := upper.AbsBoxes(graph)[0].Fold(solver.XMap(), solver.YMap())

	require.GreaterOrEqual(t, upperBox.Bottom-lowerBox.Top, 0.5-1e-6)
}

// TestSolverUnconstrainedLayerPairDoesNotSeparate covers the "unconstrained
// layer pair" scenario: when Rules.Space reports no constraint between two
// layers, the solver must not invent a separation between components on
// those layers.
func TestSolverUnconstrainedLayerPairDoesNotSeparate(t *testing.T) {
	rules := newFakeRules() // no entries: every pair is unconstrained
	tech := testSolverTech(rules)
	graph := NewGraph(tech)

	lower, err := NewWire(0.2, layerA, N(0, 0), N(2, 0))
	require.NoError(t, err)
	upper, err := NewWire(0.2, layerB, N(0, 1), N(2, 1))
	require.NoError(t, err)
	graph.Add(lower)
	graph.Add(upper)

	solver := NewSolver(graph, DefaultSolverParams())
	result := solver.Solve()
	require.True(t, result.Converged)

	// With no spacing constraint between layerA and layerB, row 1 has
	// nothing forcing it above row 0: both land at the same y coordinate.
	require.Equal(t, solver.YMap()[0], solver.YMap()[1])
}

// TestSolverIdempotentOnReSolve confirms that calling Solve twice on the
// same graph produces identical coordinate maps (Idempotence).
func TestSolverIdempotentOnReSolve(t *testing.T) {
	rules := newFakeRules().withSpace(layerA, layerA, 0.3)
	tech := testSolverTech(rules)
	graph := NewGraph(tech)

	w1, err := NewWire(0.2, layerA, N(0, 0), N(3, 0))
	require.NoError(t, err)
	w2, err := NewWire(0.2, layerA, N(0, 1), N(3, 1))
	require.NoError(t, err)
	graph.Add(w1)
	graph.Add(w2)

	solver := NewSolver(graph, DefaultSolverParams())
	first := solver.Solve()
	firstX, firstY := cloneMap(solver.XMap()), cloneMap(solver.YMap())

	second := solver.Solve()
	require.Equal(t, first.Converged, second.Converged)
	require.Equal(t, firstX, solver.XMap())
	require.Equal(t, firstY, solver.YMap())
}

// TestSolverDeterministic confirms two independently built, identical
// graphs solve to identical coordinate maps (Determinism).
func TestSolverDeterministic(t *testing.T) {
	build := func() *Graph {
		rules := newFakeRules().withSpace(layerA, layerA, 0.4)
		graph := NewGraph(testSolverTech(rules))
		w1, err := NewWire(0.2, layerA, N(0, 0), N(2, 0))
		require.NoError(t, err)
		w2, err := NewWire(0.2, layerA, N(0, 1), N(2, 1))
		require.NoError(t, err)
		graph.Add(w1)
		graph.Add(w2)
		return graph
	}

	s1 := NewSolver(build(), DefaultSolverParams())
	s1.Solve()
	s2 := NewSolver(build(), DefaultSolverParams())
	s2.Solve()

	require.Equal(t, s1.XMap(), s2.XMap())
	require.Equal(t, s1.YMap(), s2.YMap())
}

// TestComputeCoordSeparatesByRequiredSpace directly exercises computeCoord,
// the per-pair constraint the sweep applies at each index.
func TestComputeCoordSeparatesByRequiredSpace(t *testing.T) {
	s := &Solver{
		xMap: map[int]float64{0: 0, 2: 0},
		yMap: map[int]float64{0: 0},
	}
	half := NewRect(-0.5, -0.5, 0.5, 0.5)
	b1, err := NewAbsBox(0, 0, 0, 0, half, layerA)
	require.NoError(t, err)
	b2, err := NewAbsBox(2, 0, 2, 0, half, layerA)
	require.NoError(t, err)

	coord, ok := s.computeCoord(Horizontal, 1.0, b1, b2)
	require.True(t, ok)
	require.InDelta(t, 2.0, coord, 1e-9)
}

// TestComputeCoordRejectsNonPrecedingBoxes confirms a box that does not
// precede the other along the sweep imposes no constraint on it.
func TestComputeCoordRejectsNonPrecedingBoxes(t *testing.T) {
	s := &Solver{
		xMap: map[int]float64{0: 0, 2: 0},
		yMap: map[int]float64{0: 0},
	}
	half := NewRect(-0.5, -0.5, 0.5, 0.5)
	b1, err := NewAbsBox(2, 0, 2, 0, half, layerA)
	require.NoError(t, err)
	b2, err := NewAbsBox(0, 0, 0, 0, half, layerA)
	require.NoError(t, err)

	// b1 (at index 2) does not precede b2 (at index 0) along Horizontal.
	_, ok := s.computeCoord(Horizontal, 1.0, b1, b2)
	require.False(t, ok)
}

// TestBoxIsShielded covers the "shielded-constraint-drop" scenario: a
// third box fully covering the perpendicular overlap between b and wrt, on
// a shared layer and sitting no earlier than b, shields wrt from
// constraining b.
func TestBoxIsShielded(t *testing.T) {
	s := &Solver{}

	wide := NewRect(-1, -1, 1, 1)
	narrow := NewRect(-0.5, -0.5, 0.5, 0.5)

	wrt, err := NewAbsBox(0, 0, 0, 0, narrow, layerA)
	require.NoError(t, err)
	b, err := NewAbsBox(5, 0, 5, 0, narrow, layerA)
	require.NoError(t, err)
	shield, err := NewAbsBox(2, 0, 6, 0, wide, layerA)
	require.NoError(t, err)

	require.True(t, s.boxIsShielded(Horizontal, b, wrt, []AbsBox{shield}))
}

// TestBoxIsNotShieldedWithoutSharedLayer confirms a candidate shield on a
// layer unrelated to both b and wrt cannot shield anything.
func TestBoxIsNotShieldedWithoutSharedLayer(t *testing.T) {
	s := &Solver{}

	wide := NewRect(-1, -1, 1, 1)
	narrow := NewRect(-0.5, -0.5, 0.5, 0.5)

	wrt, err := NewAbsBox(0, 0, 0, 0, narrow, layerA)
	require.NoError(t, err)
	b, err := NewAbsBox(5, 0, 5, 0, narrow, layerA)
	require.NoError(t, err)
	other, err := NewAbsBox(2, 0, 6, 0, wide, layerB)
	require.NoError(t, err)

	require.False(t, s.boxIsShielded(Horizontal, b, wrt, []AbsBox{other}))
}
