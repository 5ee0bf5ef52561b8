package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lanesim/core"
)

func TestAgent_MobileFirstStepFromCenterLane(t *testing.T) {
	s := newBareSim(t, 0, newScripted())
	a := spawnAt(t, s, KindMobile, 4, 0)

	res := a.Step(s)

	require.True(t, res.Moved)
	assert.Equal(t, core.Point{X: 4, Y: 1}, a.Position(), "identity shuffle keeps forward first")
	assert.Equal(t, 1, a.Movements())
}

func TestAgent_MobileFirstStepSeeded(t *testing.T) {
	allowed := map[core.Point]bool{{X: 4, Y: 1}: true, {X: 3, Y: 1}: true, {X: 5, Y: 1}: true}

	for seed := uint64(0); seed < 50; seed++ {
		s := newBareSim(t, 0, NewSource(seed))
		a := spawnAt(t, s, KindMobile, 4, 0)

		a.Step(s)

		assert.True(t, allowed[a.Position()], "seed %d landed on %s", seed, a.Position())
		assert.Equal(t, 1, a.Movements())
	}
}

func TestAgent_ShuffleSelectsCandidate(t *testing.T) {
	rng := newScripted()
	rng.perms = [][]int{{2, 0, 1}} // right diagonal first
	s := newBareSim(t, 0, rng)
	a := spawnAt(t, s, KindMobile, 4, 0)

	a.Step(s)

	assert.Equal(t, core.Point{X: 5, Y: 1}, a.Position())
}

func TestAgent_FaultOntoWallRejected(t *testing.T) {
	s := newBareSim(t, 1, newScripted())
	a := spawnAt(t, s, KindMobile, 5, 3)

	res := a.Step(s)

	assert.True(t, res.Fault)
	assert.False(t, res.Moved)
	assert.Equal(t, core.Point{X: 5, Y: 3}, a.Position())
	assert.Equal(t, 0, a.Movements())
}

func TestAgent_FaultTakenInsideCorridor(t *testing.T) {
	s := newBareSim(t, 1, newScripted())
	a := spawnAt(t, s, KindMobile, 3, 19)

	res := a.Step(s)

	assert.True(t, res.Fault)
	assert.True(t, res.Moved)
	assert.Equal(t, core.Point{X: 4, Y: 0}, a.Position(), "toroidal y folds the unwrapped move")
	assert.Equal(t, 1, a.Movements())
}

func TestAgent_FaultDroppedOnBoundedAxis(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = LayoutSpread
	cfg.InitialAgents, cfg.FastAgents = 0, 0
	cfg.FaultRate = 1
	cfg.WrapY = false
	s, err := New(cfg, newScripted())
	require.NoError(t, err)
	a := spawnAt(t, s, KindMobile, 3, 19)

	res := a.Step(s)

	assert.True(t, res.Fault)
	assert.False(t, res.Moved)
	assert.Equal(t, core.Point{X: 3, Y: 19}, a.Position())
}

func TestAgent_FastBlockedByObstacle(t *testing.T) {
	s := newBareSim(t, 0, newScripted())
	spawnAt(t, s, KindObstacle, 3, 5)
	a := spawnAt(t, s, KindFast, 3, 4)

	res := a.Step(s)

	assert.False(t, res.Moved)
	assert.Equal(t, core.Point{X: 3, Y: 4}, a.Position())
	assert.Equal(t, 0, a.Movements())
}

func TestAgent_MobileAvoidsObstacleAhead(t *testing.T) {
	s := newBareSim(t, 0, newScripted())
	spawnAt(t, s, KindObstacle, 4, 1)
	a := spawnAt(t, s, KindMobile, 4, 0)

	a.Step(s)

	assert.Equal(t, core.Point{X: 3, Y: 1}, a.Position(), "next candidate in order is taken")
	assert.Equal(t, 1, a.Movements())
}

func TestAgent_CollidedNeverMoves(t *testing.T) {
	s := newBareSim(t, 0, NewSource(7))
	a := spawnAt(t, s, KindFast, 3, 0)
	a.markCollided()

	for i := 0; i < 5; i++ {
		res := a.Step(s)
		assert.True(t, res.Skipped)
	}
	assert.Equal(t, core.Point{X: 3, Y: 0}, a.Position())
	assert.Equal(t, 0, a.Movements())
	assert.False(t, a.markCollided(), "transition happens once")
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindObstacle, KindMobile, KindFast} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("car")))
}
