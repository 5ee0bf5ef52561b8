package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lanesim/core"
)

func TestGrid_PlaceAndContents(t *testing.T) {
	g := NewGrid(8, 20, true, true)

	require.NoError(t, g.Place(1, core.Point{X: 3, Y: 4}))
	require.NoError(t, g.Place(2, core.Point{X: 3, Y: 4}))

	assert.ElementsMatch(t, []core.Entity{1, 2}, g.ContentsAt(core.Point{X: 3, Y: 4}))
	assert.Equal(t, 2, g.CountAt(core.Point{X: 3, Y: 4}))
	assert.Empty(t, g.ContentsAt(core.Point{X: 4, Y: 4}))
}

func TestGrid_PlaceWrapsToroidalAxes(t *testing.T) {
	g := NewGrid(8, 20, true, true)

	require.NoError(t, g.Place(1, core.Point{X: 9, Y: -1}))
	pos, ok := g.PositionOf(1)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 1, Y: 19}, pos)
}

func TestGrid_OutOfBoundsOnBoundedAxis(t *testing.T) {
	g := NewGrid(8, 20, true, false)

	err := g.Place(1, core.Point{X: 3, Y: 20})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// X still wraps
	require.NoError(t, g.Place(2, core.Point{X: 8, Y: 19}))
	err = g.Move(2, core.Point{X: 0, Y: 20})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	pos, _ := g.PositionOf(2)
	assert.Equal(t, core.Point{X: 0, Y: 19}, pos, "failed move must leave the entity in place")
	assert.Nil(t, g.ContentsAt(core.Point{X: 0, Y: 20}))
	assert.False(t, g.InBounds(core.Point{X: 0, Y: -1}))
}

func TestGrid_MoveAllowsSharing(t *testing.T) {
	g := NewGrid(8, 20, true, true)
	require.NoError(t, g.Place(1, core.Point{X: 2, Y: 0}))
	require.NoError(t, g.Place(2, core.Point{X: 3, Y: 1}))

	require.NoError(t, g.Move(1, core.Point{X: 3, Y: 1}))

	assert.Empty(t, g.ContentsAt(core.Point{X: 2, Y: 0}))
	assert.ElementsMatch(t, []core.Entity{1, 2}, g.ContentsAt(core.Point{X: 3, Y: 1}))
}

func TestGrid_Errors(t *testing.T) {
	g := NewGrid(8, 20, true, true)

	assert.ErrorIs(t, g.Move(7, core.Point{}), ErrNotPlaced)

	require.NoError(t, g.Place(7, core.Point{}))
	assert.ErrorIs(t, g.Place(7, core.Point{X: 1}), ErrAlreadyPlaced)
}

func TestGrid_ContentsAtReturnsCopy(t *testing.T) {
	g := NewGrid(8, 20, true, true)
	require.NoError(t, g.Place(1, core.Point{X: 2, Y: 2}))

	got := g.ContentsAt(core.Point{X: 2, Y: 2})
	got[0] = 99

	assert.Equal(t, []core.Entity{1}, g.ContentsAt(core.Point{X: 2, Y: 2}))
}
