package g2l

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectFold(t *testing.T) {
	r := NewRect(-1, -2, 1, 2)
	folded := r.Fold(10, 20, 30, 40)
	require.Equal(t, NewRect(9, 18, 31, 42), folded)
}

func TestRectFoldSingleGrid(t *testing.T) {
	r := NewRect(-0.1, -0.1, 0.1, 0.1)
	folded := r.Fold(5, 5, 5, 5)
	require.Equal(t, NewRect(4.9, 4.9, 5.1, 5.1), folded)
}

func TestRectUnionIntersect(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(1, 1, 3, 3)
	require.Equal(t, NewRect(0, 0, 3, 3), a.Union(b))
	require.Equal(t, NewRect(1, 1, 2, 2), a.Intersect(b))
}

func TestRectOverlaps(t *testing.T) {
	a := NewRect(0, 0, 1, 1)
	require.True(t, a.Overlaps(NewRect(0.5, 0.5, 1.5, 1.5)))
	require.False(t, a.Overlaps(NewRect(1, 0, 2, 1)))
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(0, 0, 1, 1)
	require.Equal(t, NewRect(2, 3, 3, 4), r.Translate(2, 3))
}
