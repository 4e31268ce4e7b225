package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates a bell-like sine tone with a fast attack and exponential decay
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime generator at freq Hz
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus a soft octave partial
		sample := 0.6*math.Sin(2*math.Pi*g.freq*t) + 0.2*math.Sin(2*math.Pi*g.freq*2*t)

		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-t * 12)
		sample *= attack * decay * 0.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
