package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lanesim/core"
)

// scriptedSource replays fixed draws
// Float64 pops floats (fallback when empty); Shuffle applies queued permutations, identity when empty
type scriptedSource struct {
	floats   []float64
	perms    [][]int
	fallback float64
}

func newScripted() *scriptedSource {
	return &scriptedSource{fallback: 0.99}
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return s.fallback
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

// Shuffle leaves original element perm[i] at index i
func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {
	if n < 2 || len(s.perms) == 0 {
		return
	}
	perm := s.perms[0]
	s.perms = s.perms[1:]

	pos := make([]int, n) // pos[k]: current index of original element k
	at := make([]int, n)  // at[i]: original element currently at index i
	for i := range pos {
		pos[i], at[i] = i, i
	}
	for i := 0; i < n; i++ {
		j := pos[perm[i]]
		if j == i {
			continue
		}
		swap(i, j)
		ei, ej := at[i], at[j]
		at[i], at[j] = ej, ei
		pos[ej], pos[ei] = i, j
	}
}

// newBareSim returns the 8x20 walled road with no agents
func newBareSim(t *testing.T, faultRate float64, rng Source, opts ...Option) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Layout = LayoutSpread
	cfg.InitialAgents = 0
	cfg.FastAgents = 0
	cfg.FaultRate = faultRate

	s, err := New(cfg, rng, opts...)
	require.NoError(t, err)
	require.Empty(t, s.Agents())
	return s
}

func spawnAt(t *testing.T, s *Simulation, kind Kind, x, y int) *Agent {
	t.Helper()
	a, err := s.spawn(kind, core.Point{X: x, Y: y})
	require.NoError(t, err)
	return a
}
