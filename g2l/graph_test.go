package g2l

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphAddIndexesNodesAndLayers(t *testing.T) {
	graph := NewGraph(TechContext{})
	w, err := NewWire(0.2, layerA, N(0, 0), N(3, 0))
	require.NoError(t, err)
	graph.Add(w)

	require.Equal(t, []Component{w}, graph.Components())
	require.Equal(t, []int{0, 3}, graph.XIndexes())
	require.Equal(t, []int{0}, graph.YIndexes())
	require.Equal(t, []Component{w}, graph.ComponentsAt(0, 0))
	require.Equal(t, []Component{w}, graph.ComponentsAt(3, 0))
	require.Empty(t, graph.ComponentsAt(1, 0))
	require.Equal(t, []Component{w}, graph.ComponentsOnLayer(layerA))
}

// TestGraphAddDedupesRepeatedNode confirms a component that lists the same
// node twice (a degenerate zero-length wire) is indexed under that node
// only once, rather than appearing twice in ComponentsAt.
func TestGraphAddDedupesRepeatedNode(t *testing.T) {
	graph := NewGraph(TechContext{})
	w, err := NewWire(0.2, layerA, N(1, 1), N(1, 1))
	require.NoError(t, err)
	graph.Add(w)

	require.Len(t, graph.ComponentsAt(1, 1), 1)
}

func TestGraphXYIndexesSortedAndDeduped(t *testing.T) {
	graph := NewGraph(TechContext{})
	w1, err := NewWire(0.2, layerA, N(5, 2), N(1, 2))
	require.NoError(t, err)
	w2, err := NewWire(0.2, layerA, N(5, 7), N(5, 2))
	require.NoError(t, err)
	graph.Add(w1)
	graph.Add(w2)

	require.Equal(t, []int{1, 5}, graph.XIndexes())
	require.Equal(t, []int{2, 7}, graph.YIndexes())
}
