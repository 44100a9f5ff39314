package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gosearch/grid"
)

func nodeAt(id, row, col, movement int) Node {
	return Node{ID: NodeID(id), State: grid.Position{Row: row, Col: col}, Parent: NoParent, Movement: movement}
}

func TestFrontier_LIFO(t *testing.T) {
	f := NewFrontier(LIFO)
	assert.True(t, f.Empty())
	f.Add(nodeAt(0, 0, 0, 0))
	f.Add(nodeAt(1, 0, 1, 1))
	f.Add(nodeAt(2, 0, 2, 2))

	for _, want := range []NodeID{2, 1, 0} {
		n, err := f.Remove()
		require.NoError(t, err)
		assert.Equal(t, want, n.ID)
	}
	assert.True(t, f.Empty())
}

func TestFrontier_FIFO(t *testing.T) {
	f := NewFrontier(FIFO)
	f.Add(nodeAt(0, 0, 0, 0))
	f.Add(nodeAt(1, 0, 1, 1))
	f.Add(nodeAt(2, 0, 2, 2))

	for _, want := range []NodeID{0, 1, 2} {
		n, err := f.Remove()
		require.NoError(t, err)
		assert.Equal(t, want, n.ID)
	}
	assert.Equal(t, 0, f.Len())
}

// TestFrontier_RemoveEmpty checks both disciplines report ErrEmptyFrontier.
func TestFrontier_RemoveEmpty(t *testing.T) {
	for _, d := range []Discipline{LIFO, FIFO} {
		_, err := NewFrontier(d).Remove()
		assert.ErrorIs(t, err, ErrEmptyFrontier, d.String())
	}
}

// TestFrontier_ContainsState tracks live contents across removals and
// allows duplicate states.
func TestFrontier_ContainsState(t *testing.T) {
	f := NewFrontier(FIFO)
	p := grid.Position{Row: 3, Col: 4}
	assert.False(t, f.ContainsState(p))

	f.Add(nodeAt(0, 3, 4, 1))
	f.Add(nodeAt(1, 3, 4, 5))
	assert.Equal(t, 2, f.Len())
	assert.True(t, f.ContainsState(p))

	_, _ = f.Remove()
	assert.True(t, f.ContainsState(p))
	_, _ = f.Remove()
	assert.False(t, f.ContainsState(p))
}

// TestFrontier_NodesBacking verifies that reordering Nodes() in place
// changes what Remove returns, while Snapshot is detached.
func TestFrontier_NodesBacking(t *testing.T) {
	f := NewFrontier(LIFO)
	f.Add(nodeAt(0, 0, 5, 0)) // score 5
	f.Add(nodeAt(1, 0, 1, 0)) // score 1

	snap := f.Snapshot()
	Reorder(f.Nodes())

	n, err := f.Remove()
	require.NoError(t, err)
	assert.Equal(t, NodeID(0), n.ID, "highest score is last after reorder")
	assert.Equal(t, NodeID(1), snap[1].ID, "snapshot must not follow the reorder")
}

func TestFrontier_String(t *testing.T) {
	f := NewFrontier(LIFO)
	f.Add(nodeAt(0, 1, 2, 1))
	f.Add(nodeAt(1, 0, 0, 0))
	assert.Equal(t, "[(1, 2) m=1 w=2], [(0, 0) m=0 w=0]", f.String())
}
