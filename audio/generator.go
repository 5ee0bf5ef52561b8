package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Generators are endless; callers bound them with beep.Take

// BuzzGenerator is a harsh low tone built from the first three harmonics
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz at freq Hz
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(4*math.Pi*g.freq*t) +
			0.075*math.Sin(6*math.Pi*g.freq*t)

		// 20ms fade in avoids the click of a hard start
		sample *= math.Min(t/0.02, 1.0) * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// SweepGenerator glides linearly from one frequency to another over span samples, then holds
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	span     int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep covering span samples
func NewSweepGenerator(sr beep.SampleRate, from, to float64, span int) *SweepGenerator {
	if span < 1 {
		span = 1
	}
	return &SweepGenerator{sr: sr, from: from, to: to, span: span}
}

// Freq returns the instantaneous frequency at the current position
func (g *SweepGenerator) Freq() float64 {
	progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
	return g.from + (g.to-g.from)*progress
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)

		// Phase accumulation keeps the glide continuous
		g.phase += 2 * math.Pi * g.Freq() / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		sample := 0.25 * (1 - progress) * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error { return nil }

// ClickGenerator is a short exponentially decaying sine
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click at freq Hz
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.3 * math.Exp(-t*200) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error { return nil }
