package g2l

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeLess(t *testing.T) {
	require.True(t, N(0, 0).Less(N(1, 0)))
	require.True(t, N(0, 0).Less(N(0, 1)))
	require.False(t, N(1, 0).Less(N(0, 5)))
	require.False(t, N(2, 2).Less(N(2, 2)))
}
