package engine

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/lanesim/core"
	"github.com/lixenwraith/lanesim/status"
)

// Simulation owns the grid, the roster and the random stream of one run
// Not safe for concurrent use; readers on other goroutines go through Snapshot copies or the status registry
type Simulation struct {
	cfg  Config
	grid *Grid
	rng  Source

	nextID    core.Entity
	agents    map[core.Entity]*Agent
	active    []*Agent // movable agents in creation order
	order     []*Agent // activation order scratch, reshuffled every step
	obstacles []*Agent

	running    bool
	step       int
	faultMoves int
	series     []SeriesPoint

	logger    *log.Logger
	listeners []Listener
	registry  *status.Registry
	metrics   metricRefs
}

// metricRefs caches registry pointers so publishing is lock-free
type metricRefs struct {
	step       *atomic.Int64
	movements  *atomic.Int64
	collided   *atomic.Int64
	active     *atomic.Int64
	faultMoves *atomic.Int64
	running    *atomic.Bool
	faultRate  *status.AtomicFloat
}

// New builds the walls and the agent roster described by cfg
func New(cfg Config, rng Source, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Layout == "" {
		cfg.Layout = LayoutClassic
	}

	s := &Simulation{
		cfg:     cfg,
		grid:    NewGrid(cfg.Width, cfg.Height, cfg.WrapX, cfg.WrapY),
		rng:     rng,
		agents:  make(map[core.Entity]*Agent),
		running: true,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, p := range wallCells(cfg.Height) {
		if _, err := s.spawn(KindObstacle, p); err != nil {
			return nil, err
		}
	}

	placements, err := buildLayout(cfg)
	if err != nil {
		return nil, err
	}
	for _, pl := range placements {
		if _, err := s.spawn(pl.kind, pl.pos); err != nil {
			return nil, err
		}
	}
	if s.registry != nil {
		s.bindMetrics()
		s.publish()
	}

	s.logger.Info("simulation ready",
		"width", cfg.Width, "height", cfg.Height,
		"layout", cfg.Layout, "agents", len(s.active),
		"obstacles", len(s.obstacles), "fault_rate", cfg.FaultRate)
	return s, nil
}

// nextEntity hands out ids from the simulation-owned sequence
func (s *Simulation) nextEntity() core.Entity {
	s.nextID++
	return s.nextID
}

func (s *Simulation) spawn(kind Kind, p core.Point) (*Agent, error) {
	var b Behavior
	switch kind {
	case KindObstacle:
		b = StaticBehavior{}
	case KindMobile:
		b = LaneBehavior{FaultRate: s.cfg.FaultRate}
	case KindFast:
		b = ForwardBehavior{}
	default:
		return nil, fmt.Errorf("spawn %s at %s: unsupported kind", kind, p)
	}

	a := NewAgent(s.nextEntity(), kind, b)
	if err := s.grid.Place(a.ID, p); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", kind, err)
	}
	a.pos, _ = s.grid.PositionOf(a.ID)
	s.agents[a.ID] = a

	if b.CanMove() {
		s.active = append(s.active, a)
	} else {
		s.obstacles = append(s.obstacles, a)
	}
	return a, nil
}

// Env implementation handed to agents

func (s *Simulation) Grid() *Grid  { return s.grid }
func (s *Simulation) Rand() Source { return s.rng }

func (s *Simulation) Obstructed(p core.Point) bool {
	for _, id := range s.grid.cell(p) {
		if a := s.agents[id]; a != nil && a.behavior.Obstructs() {
			return true
		}
	}
	return false
}

// Step advances the run by one tick: move all, detect collisions, check halt, record
// A halted simulation ignores further calls
func (s *Simulation) Step() {
	if !s.running {
		return
	}
	s.step++

	s.order = append(s.order[:0], s.active...)
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	for _, a := range s.order {
		s.activate(a)
	}

	// Barrier: the pass below sees only post-move positions
	collided := s.detectCollisions()

	if collided == len(s.active) {
		s.running = false
		s.logger.Info("simulation halted", "step", s.step, "total_movements", s.TotalMovements())
		s.emit(Event{Type: EventHalted, Step: s.step})
	}

	s.series = append(s.series, SeriesPoint{
		Step:           s.step,
		TotalMovements: s.TotalMovements(),
		Collided:       collided,
	})
	s.publish()
}

func (s *Simulation) activate(a *Agent) {
	res := a.Step(s)
	if res.Skipped {
		return
	}

	if res.Fault {
		if res.Moved {
			s.faultMoves++
		}
		s.logger.Debug("fault move", "step", s.step, "entity", a.ID, "from", res.From, "to", res.To, "taken", res.Moved)
		s.emit(Event{Type: EventFault, Step: s.step, Entity: a.ID, Cell: res.To, Moved: res.Moved})
	}

	if res.Moved {
		s.logger.Debug("moved", "step", s.step, "entity", a.ID, "from", res.From, "to", res.To)
		s.emit(Event{Type: EventMoved, Step: s.step, Entity: a.ID, Cell: res.To, Moved: true})
	} else {
		s.emit(Event{Type: EventBlocked, Step: s.step, Entity: a.ID, Cell: res.From})
	}
}

// detectCollisions marks every movable occupant of a shared cell and returns the collided total
func (s *Simulation) detectCollisions() int {
	for _, a := range s.active {
		if a.Collided() {
			continue
		}
		cell := s.grid.cell(a.pos)
		if len(cell) <= 1 {
			continue
		}
		for _, id := range cell {
			mate := s.agents[id]
			if mate == nil || !mate.behavior.CanMove() {
				continue
			}
			if mate.markCollided() {
				s.logger.Info("collision", "step", s.step, "entity", mate.ID, "cell", mate.pos, "occupants", len(cell))
				s.emit(Event{Type: EventCollided, Step: s.step, Entity: mate.ID, Cell: mate.pos})
			}
		}
	}
	return s.CollidedCount()
}

// Run steps until halted, the budget is spent or ctx is done; returns steps executed
// A budget <= 0 means no budget
func (s *Simulation) Run(ctx context.Context, budget int) int {
	n := 0
	for s.running && (budget <= 0 || n < budget) {
		if ctx.Err() != nil {
			break
		}
		s.Step()
		n++
	}
	return n
}

func (s *Simulation) emit(ev Event) {
	for _, l := range s.listeners {
		l.OnEvent(ev)
	}
}

func (s *Simulation) bindMetrics() {
	r := s.registry
	s.metrics = metricRefs{
		step:       r.Ints.Get(status.KeyStep),
		movements:  r.Ints.Get(status.KeyMovements),
		collided:   r.Ints.Get(status.KeyCollided),
		active:     r.Ints.Get(status.KeyActive),
		faultMoves: r.Ints.Get(status.KeyFaultMoves),
		running:    r.Bools.Get(status.KeyRunning),
		faultRate:  r.Floats.Get(status.KeyFaultRate),
	}
}

func (s *Simulation) publish() {
	if s.registry == nil {
		return
	}
	m := s.metrics
	m.step.Store(int64(s.step))
	m.movements.Store(int64(s.TotalMovements()))
	m.collided.Store(int64(s.CollidedCount()))
	m.active.Store(int64(len(s.active)))
	m.faultMoves.Store(int64(s.faultMoves))
	m.running.Store(s.running)
	m.faultRate.Set(s.cfg.FaultRate)
}

// Read-only query surface

// Running is true until every active agent has collided
func (s *Simulation) Running() bool { return s.running }

// Halted is the negation of Running
func (s *Simulation) Halted() bool { return !s.running }

// StepCount is the number of steps executed while running
func (s *Simulation) StepCount() int { return s.step }

// FaultMoves counts malformed moves that were actually taken
func (s *Simulation) FaultMoves() int { return s.faultMoves }

func (s *Simulation) Width() int     { return s.cfg.Width }
func (s *Simulation) Height() int    { return s.cfg.Height }
func (s *Simulation) Config() Config { return s.cfg }

// TotalMovements sums the movement counters of all active agents
func (s *Simulation) TotalMovements() int {
	total := 0
	for _, a := range s.active {
		total += a.moves
	}
	return total
}

// CollidedCount is the number of active agents in the collided state
func (s *Simulation) CollidedCount() int {
	n := 0
	for _, a := range s.active {
		if a.Collided() {
			n++
		}
	}
	return n
}

// Agents lists active agents in creation order
func (s *Simulation) Agents() []AgentView {
	out := make([]AgentView, len(s.active))
	for i, a := range s.active {
		out[i] = a.View()
	}
	return out
}

// Agent looks up any entity, obstacles included
func (s *Simulation) Agent(id core.Entity) (AgentView, bool) {
	a, ok := s.agents[id]
	if !ok {
		return AgentView{}, false
	}
	return a.View(), true
}

// ObstacleCells lists wall cells in creation order
func (s *Simulation) ObstacleCells() []core.Point {
	out := make([]core.Point, len(s.obstacles))
	for i, o := range s.obstacles {
		out[i] = o.pos
	}
	return out
}

// Series returns the per-step aggregate history
func (s *Simulation) Series() []SeriesPoint {
	return slices.Clone(s.series)
}

// Snapshot captures the full read-only state
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Step:           s.step,
		Width:          s.cfg.Width,
		Height:         s.cfg.Height,
		Running:        s.running,
		TotalMovements: s.TotalMovements(),
		Collided:       s.CollidedCount(),
		Active:         len(s.active),
		FaultMoves:     s.faultMoves,
		Agents:         s.Agents(),
		Obstacles:      s.ObstacleCells(),
	}
}
