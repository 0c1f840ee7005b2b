package demotech

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhconnelly/go-g2l/g2l"
)

func TestRulesLayerTranslatesKnownNames(t *testing.T) {
	rules := Rules{}

	layer, err := rules.Layer("metal1")
	require.NoError(t, err)
	require.Equal(t, Li, layer)

	layer, err = rules.Layer("via1")
	require.NoError(t, err)
	require.Equal(t, Mcon, layer)
}

func TestRulesLayerRejectsUnknownName(t *testing.T) {
	_, err := Rules{}.Layer("nonsense")
	require.ErrorIs(t, err, g2l.ErrUnknownLayerName)
}

func TestRulesSpaceIsOrderIndependent(t *testing.T) {
	rules := Rules{}

	space1, ok1 := rules.Space(Licon, Poly)
	space2, ok2 := rules.Space(Poly, Licon)
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, space1, space2)
	require.Equal(t, 0.05, space1)
}

func TestRulesSpaceUnconstrainedPairReturnsFalse(t *testing.T) {
	_, ok := Rules{}.Space(Met3, Met4)
	require.False(t, ok)
}

type stubSink struct {
	created []string
}

func (s *stubSink) CreateLayer(name string) (g2l.LayerHandle, error) {
	s.created = append(s.created, name)
	return name, nil
}
func (s *stubSink) CreateCell(name string) (g2l.Cell, error) { return nil, nil }
func (s *stubSink) Write(path string) error                  { return nil }

func TestRulesCreateLayersRegistersEveryLayer(t *testing.T) {
	sink := &stubSink{}
	handles, err := Rules{}.CreateLayers(sink)
	require.NoError(t, err)
	require.Len(t, handles, len(layerNames))
	require.Len(t, sink.created, len(layerNames))
	require.Equal(t, "li", handles[Li])
}

func TestCreateFarmViaPlacesAtLeastOneVia(t *testing.T) {
	box := g2l.NewRect(-0.085, -0.085, 0.085, 0.085)
	vias := createFarmVia(0.17, 0.17, box)
	require.Len(t, vias, 1)
	require.Equal(t, g2l.NewRect(-0.085, -0.085, 0.085, 0.085), vias[0])
}

func TestCreateFarmViaTilesWiderBox(t *testing.T) {
	box := g2l.NewRect(-0.255, -0.085, 0.255, 0.085)
	vias := createFarmVia(0.17, 0.17, box)
	require.Len(t, vias, 2)
	require.InDelta(t, -0.17, vias[0].Left+0.085, 1e-9)
	require.InDelta(t, 0.17, vias[1].Left+0.085, 1e-9)
}

func TestViasBoxesSizesFromAttachedWireWidths(t *testing.T) {
	vias := Vias{}
	var bottomWidths, topWidths g2l.SideWidths
	bottomWidths[g2l.SideLeft] = g2l.WidthPtr(0.3)
	bottomWidths[g2l.SideRight] = g2l.WidthPtr(0.3)

	bottomPad, cutHull, _ := vias.Boxes(Li, Mcon, bottomWidths, topWidths)
	require.Greater(t, bottomPad.Width(), 0.0)
	require.Greater(t, cutHull.Width(), 0.0)
	require.Greater(t, cutHull.Height(), 0.0)
}

func TestViasBoxesAppliesMinimumPadToUnconnectedVia(t *testing.T) {
	vias := Vias{}
	var bottomWidths, topWidths g2l.SideWidths

	bottomPad, _, topPad := vias.Boxes(Poly, Li, bottomWidths, topWidths)
	require.InDelta(t, 0.27, bottomPad.Width(), 1e-9)
	require.InDelta(t, 0.27, bottomPad.Height(), 1e-9)
	require.InDelta(t, 0.27, topPad.Height(), 1e-9)
}

func TestMosfetsImplementsInterface(t *testing.T) {
	m := Mosfets{}
	require.Equal(t, Poly, m.PolyLayer())
	require.Equal(t, Diff, m.ActiveLayer())
	require.Greater(t, m.MinNMOSWidth(), 0.0)
}

func TestTechContextWiresAllThreeCollaborators(t *testing.T) {
	tc := TechContext()
	require.NotNil(t, tc.Rules)
	require.NotNil(t, tc.Vias)
	require.NotNil(t, tc.Mosfets)
}
