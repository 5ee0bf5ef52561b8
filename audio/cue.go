package audio

import "github.com/lixenwraith/lanesim/engine"

// Player is the cue surface CueListener drives
type Player interface {
	PlayCollision()
	PlayHalt()
	PlayFault()
}

// CueListener turns engine events into sound cues
// Several agents colliding in one step produce a single buzz
type CueListener struct {
	player        Player
	lastCollision int
}

// NewCueListener creates a listener driving p
func NewCueListener(p Player) *CueListener {
	return &CueListener{player: p, lastCollision: -1}
}

func (l *CueListener) OnEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventCollided:
		if ev.Step == l.lastCollision {
			return
		}
		l.lastCollision = ev.Step
		l.player.PlayCollision()
	case engine.EventHalted:
		l.player.PlayHalt()
	case engine.EventFault:
		if ev.Moved {
			l.player.PlayFault()
		}
	}
}
