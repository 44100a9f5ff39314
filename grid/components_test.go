package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents_Islands(t *testing.T) {
	g, err := ParseString("A# \n## \n  B\n")
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []Position{{0, 0}}, comps[0])
	assert.Equal(t, []Position{{0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}, comps[1])
	assert.False(t, g.Reachable())
}

func TestComponents_Single(t *testing.T) {
	g, err := ParseString("A  \n # \n  B\n")
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], g.OpenCells())
	assert.True(t, g.Reachable())
}

func TestReachable_SameCell(t *testing.T) {
	g, err := New([][]bool{{false}}, Position{}, Position{})
	require.NoError(t, err)
	assert.True(t, g.Reachable())
}
