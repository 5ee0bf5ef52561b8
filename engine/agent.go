package engine

import (
	"fmt"

	"github.com/lixenwraith/lanesim/core"
)

// Kind tags the agent variant
type Kind uint8

const (
	KindObstacle Kind = iota
	KindMobile
	KindFast
)

var kindNames = [...]string{
	KindObstacle: "obstacle",
	KindMobile:   "mobile",
	KindFast:     "fast",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown agent kind %q", text)
}

// CollisionState only ever moves from Normal to Collided
type CollisionState uint8

const (
	StateNormal CollisionState = iota
	StateCollided
)

func (s CollisionState) String() string {
	if s == StateCollided {
		return "collided"
	}
	return "normal"
}

func (s CollisionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CollisionState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*s = StateNormal
	case "collided":
		*s = StateCollided
	default:
		return fmt.Errorf("unknown collision state %q", text)
	}
	return nil
}

// Env is what an agent needs from its simulation during a step
type Env interface {
	Grid() *Grid
	Rand() Source
	// Obstructed reports whether p holds anything movers must avoid
	Obstructed(p core.Point) bool
}

// MoveResult describes one agent activation
type MoveResult struct {
	Skipped bool // collided or static, no draw consumed
	Moved   bool
	Fault   bool // candidates were replaced by the malformed move
	From    core.Point
	To      core.Point
}

// Agent is any entity on the grid; its behavior decides whether and how it moves
type Agent struct {
	ID   core.Entity
	Kind Kind

	pos      core.Point
	moves    int
	state    CollisionState
	behavior Behavior
}

// NewAgent creates an unplaced agent of the given kind
func NewAgent(id core.Entity, kind Kind, behavior Behavior) *Agent {
	return &Agent{
		ID:       id,
		Kind:     kind,
		behavior: behavior,
	}
}

func (a *Agent) Position() core.Point  { return a.pos }
func (a *Agent) Movements() int        { return a.moves }
func (a *Agent) State() CollisionState { return a.state }
func (a *Agent) Behavior() Behavior    { return a.behavior }
func (a *Agent) Collided() bool        { return a.state == StateCollided }

// markCollided reports whether this call performed the transition
func (a *Agent) markCollided() bool {
	if a.state == StateCollided {
		return false
	}
	a.state = StateCollided
	return true
}

// Step runs one activation: collided and static agents stay put
func (a *Agent) Step(env Env) MoveResult {
	res := MoveResult{From: a.pos, To: a.pos}
	if a.state == StateCollided || !a.behavior.CanMove() {
		res.Skipped = true
		return res
	}

	g := env.Grid()
	rng := env.Rand()

	cands, fault := a.behavior.Candidates(a.pos, g, rng)
	res.Fault = fault
	rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})

	for _, c := range cands {
		// Unwrapped fault moves off a bounded axis are dropped here
		p, ok := g.Normalize(c)
		if !ok || env.Obstructed(p) {
			continue
		}
		if err := g.Move(a.ID, p); err != nil {
			continue
		}
		a.pos = p
		a.moves++
		res.Moved = true
		res.To = p
		return res
	}
	return res
}

// View returns a detached copy for read-only consumers
func (a *Agent) View() AgentView {
	return AgentView{
		ID:        a.ID,
		Kind:      a.Kind,
		Position:  a.pos,
		Movements: a.moves,
		State:     a.state,
	}
}
