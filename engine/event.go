package engine

import "github.com/lixenwraith/lanesim/core"

// EventType identifies what happened during a step
type EventType int

const (
	// EventMoved an agent relocated
	// Trigger: Agent.Step accepted a candidate | Cell: destination
	EventMoved EventType = iota

	// EventBlocked an agent had candidates but none was free of obstacles
	// Trigger: Agent.Step exhausted its candidates | Cell: unchanged position
	EventBlocked

	// EventFault an agent drew the malformed unwrapped move
	// Trigger: LaneBehavior fault draw | Cell: resulting position, Moved tells if it was taken
	EventFault

	// EventCollided an agent transitioned Normal -> Collided
	// Trigger: collision pass | Cell: shared cell
	EventCollided

	// EventHalted every active agent is collided, the run is over
	// Trigger: end of the collision pass | Entity: 0
	EventHalted
)

func (t EventType) String() string {
	switch t {
	case EventMoved:
		return "moved"
	case EventBlocked:
		return "blocked"
	case EventFault:
		return "fault"
	case EventCollided:
		return "collided"
	case EventHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Event is delivered synchronously to listeners inside Simulation.Step
type Event struct {
	Type   EventType
	Step   int
	Entity core.Entity
	Cell   core.Point
	Moved  bool
}

// Listener consumes engine events, it must not call back into Step
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(ev Event) { f(ev) }
