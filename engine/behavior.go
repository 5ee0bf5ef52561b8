package engine

import (
	"github.com/lixenwraith/lanesim/core"
	"github.com/lixenwraith/lanesim/parameter"
)

// Behavior is the capability set an agent variant plugs into the shared step routine
type Behavior interface {
	// CanMove reports whether the agent is scheduled at all
	CanMove() bool

	// Obstructs reports whether movers must refuse a cell holding this agent
	Obstructs() bool

	// Candidates returns the cells to try this step before shuffling
	// fault is true when the list was replaced by the malformed move
	Candidates(pos core.Point, g *Grid, rng Source) (cands []core.Point, fault bool)
}

// StaticBehavior is a wall segment: never moves, blocks movers
type StaticBehavior struct{}

func (StaticBehavior) CanMove() bool   { return false }
func (StaticBehavior) Obstructs() bool { return true }

func (StaticBehavior) Candidates(core.Point, *Grid, Source) ([]core.Point, bool) {
	return nil, false
}

// LaneBehavior moves forward or diagonally inside the lane band,
// occasionally substituting the unwrapped (x+1, y+1) move
type LaneBehavior struct {
	FaultRate float64
}

func (LaneBehavior) CanMove() bool   { return true }
func (LaneBehavior) Obstructs() bool { return false }

func (b LaneBehavior) Candidates(pos core.Point, g *Grid, rng Source) ([]core.Point, bool) {
	nextY := core.Wrap(pos.Y+1, g.Height)

	cands := make([]core.Point, 1, 3)
	cands[0] = core.Point{X: pos.X, Y: nextY}
	if pos.X > parameter.LaneMin {
		cands = append(cands, core.Point{X: core.Wrap(pos.X-1, g.Width), Y: nextY})
	}
	if pos.X < parameter.LaneMax {
		cands = append(cands, core.Point{X: core.Wrap(pos.X+1, g.Width), Y: nextY})
	}

	// Drawn every move so the stream consumption is independent of the rate
	if rng.Float64() < b.FaultRate {
		return []core.Point{pos.Add(1, 1)}, true
	}
	return cands, false
}

// ForwardBehavior only ever moves straight ahead and is never faulty
type ForwardBehavior struct{}

func (ForwardBehavior) CanMove() bool   { return true }
func (ForwardBehavior) Obstructs() bool { return false }

func (ForwardBehavior) Candidates(pos core.Point, g *Grid, _ Source) ([]core.Point, bool) {
	return []core.Point{{X: pos.X, Y: core.Wrap(pos.Y+1, g.Height)}}, false
}
