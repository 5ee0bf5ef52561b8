// Package audio plays short synthesized cues for simulation events
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/lanesim/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes cues onto the speaker
// Every Play method is a silent no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker; fails on hosts without an audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued cues; the speaker itself stays open for the process lifetime
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Played returns the number of cues queued since Initialize
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlayCollision queues the collision buzz
func (sm *SoundManager) PlayCollision() {
	sm.play(CollisionCue())
}

// PlayHalt queues the falling end-of-run tone
func (sm *SoundManager) PlayHalt() {
	sm.play(HaltCue())
}

// PlayFault queues the fault click
func (sm *SoundManager) PlayFault() {
	sm.play(FaultCue())
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// CollisionCue is the bounded collision buzz
func CollisionCue() beep.Streamer {
	return beep.Take(sampleRate.N(parameter.CollisionSoundDuration),
		NewBuzzGenerator(sampleRate, parameter.CollisionSoundFreq))
}

// HaltCue is the bounded halt sweep
func HaltCue() beep.Streamer {
	n := sampleRate.N(parameter.HaltSoundDuration)
	return beep.Take(n, NewSweepGenerator(sampleRate, parameter.HaltSoundFreqStart, parameter.HaltSoundFreqEnd, n))
}

// FaultCue is the bounded fault click
func FaultCue() beep.Streamer {
	return beep.Take(sampleRate.N(parameter.FaultSoundDuration),
		NewClickGenerator(sampleRate, parameter.FaultSoundFreq))
}
