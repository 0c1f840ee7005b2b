package g2l

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeMosfets struct{}

func (fakeMosfets) SourceDrainActiveWidth() float64 { return 0.4 }
func (fakeMosfets) GateExtension() float64          { return 0.13 }
func (fakeMosfets) DefaultMOSLength() float64       { return 0.13 }
func (fakeMosfets) MinNMOSWidth() float64           { return 0.6 }
func (fakeMosfets) MinPMOSWidth() float64           { return 0.9 }
func (fakeMosfets) PolyLayer() Layer                { return testCutLayer }
func (fakeMosfets) ActiveLayer() Layer              { return testBottomLayer }

func testMOSFETTech() TechContext {
	return TechContext{Mosfets: fakeMosfets{}}
}

func TestNewMOSFETRejectsNonAxisAlignedNodes(t *testing.T) {
	_, err := NewMOSFET(testMOSFETTech(), N(1, 1), N(0, 0), N(2, 0), 0.9, 0.13)
	require.ErrorIs(t, err, ErrNonAxisAlignedMOSFET)
}

func TestNewMOSFETRejectsNonPositiveWidth(t *testing.T) {
	_, err := NewMOSFET(testMOSFETTech(), N(1, 0), N(0, 0), N(2, 0), 0, 0.13)
	require.ErrorIs(t, err, ErrInvalidWidth)
}

func TestNewMOSFETRejectsNonPositiveLength(t *testing.T) {
	_, err := NewMOSFET(testMOSFETTech(), N(1, 0), N(0, 0), N(2, 0), 0.9, 0)
	require.ErrorIs(t, err, ErrInvalidLength)
}

// TestMOSFETSourceDrainOrdered confirms source/drain nodes are ordered
// ascending regardless of which terminal the caller calls source or drain,
// unlike the original's source/drain swap logic which this implementation
// deliberately does not reproduce.
func TestMOSFETSourceDrainOrdered(t *testing.T) {
	m, err := NewMOSFET(testMOSFETTech(), N(1, 0), N(2, 0), N(0, 0), 0.9, 0.13)
	require.NoError(t, err)
	lo, hi := m.sourceDrainOrdered()
	require.Equal(t, N(0, 0), lo)
	require.Equal(t, N(2, 0), hi)
	require.Equal(t, []Node{N(0, 0), N(1, 0), N(2, 0)}, m.Nodes())
}

func TestMOSFETIsHorizontal(t *testing.T) {
	m, err := NewMOSFET(testMOSFETTech(), N(1, 0), N(0, 0), N(2, 0), 0.9, 0.13)
	require.NoError(t, err)
	require.True(t, m.IsHorizontal())

	// A column-aligned device is rejected at construction, so every MOSFET
	// that can be built is horizontal.
	vm, err := NewMOSFET(testMOSFETTech(), N(0, 1), N(0, 0), N(0, 2), 0.9, 0.13)
	require.ErrorIs(t, err, ErrNonAxisAlignedMOSFET)
	require.Nil(t, vm)
}

func TestMOSFETAbsBoxesSpansSourceDrainAndCentersGate(t *testing.T) {
	tech := testMOSFETTech()
	m, err := NewMOSFET(tech, N(1, 0), N(0, 0), N(2, 0), 0.9, 0.13)
	require.NoError(t, err)

	graph := NewGraph(tech)
	graph.Add(m)

	boxes := m.AbsBoxes(graph)
	require.Len(t, boxes, 2)

	activeBox := boxes[0]
	require.Equal(t, testBottomLayer, activeBox.Layer)
	require.Equal(t, 0, activeBox.IX1)
	require.Equal(t, 2, activeBox.IX2)
	require.InDelta(t, -0.45, activeBox.Footprint.Bottom, 1e-9)
	require.InDelta(t, 0.45, activeBox.Footprint.Top, 1e-9)

	gateBox := boxes[1]
	require.Equal(t, testCutLayer, gateBox.Layer)
	require.Equal(t, 1, gateBox.IX1)
	require.Equal(t, 1, gateBox.IX2)
	require.InDelta(t, -0.065, gateBox.Footprint.Left, 1e-9)
	require.InDelta(t, 0.065, gateBox.Footprint.Right, 1e-9)
	require.InDelta(t, -0.58, gateBox.Footprint.Bottom, 1e-9)
	require.InDelta(t, 0.58, gateBox.Footprint.Top, 1e-9)
}
