package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Collision Buzz
const (
	CollisionSoundDuration = 150 * time.Millisecond
	CollisionSoundFreq     = 120.0
)

// Halt Tone, falls from start to end frequency
const (
	HaltSoundDuration  = 600 * time.Millisecond
	HaltSoundFreqStart = 660.0
	HaltSoundFreqEnd   = 220.0
)

// Fault Click
const (
	FaultSoundDuration = 30 * time.Millisecond
	FaultSoundFreq     = 1800.0
)
