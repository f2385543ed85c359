package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	carveNoiseAmplitude = 0.18
	carveSwayHz         = 0.7 // slow swell of the hiss, like edges biting in turns
	carveCutoff         = 0.08

	crashNoiseAmplitude    = 0.35
	crashRumbleAmplitude   = 0.3
	crashRumbleFrequencyHz = 70.0
	crashDecayRate         = 9.0
)

// noise is a small xorshift source; audio does not need the game's seeded stream
type noise uint64

func newNoise() noise { return noise(uint64(time.Now().UnixNano()) | 1) }

func (n *noise) next() float64 {
	x := uint64(*n)
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	*n = noise(x)
	return float64(x>>11)/float64(1<<53)*2 - 1
}

// CarveGenerator produces an endless low-passed hiss with a slow swell
type CarveGenerator struct {
	sr   beep.SampleRate
	pos  int
	lp   float64
	rand noise
}

// NewCarveGenerator creates a carve sound generator
func NewCarveGenerator(sr beep.SampleRate) *CarveGenerator {
	return &CarveGenerator{sr: sr, rand: newNoise()}
}

func (g *CarveGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// One-pole low-pass turns white noise into snow hiss
		g.lp += carveCutoff * (g.rand.next() - g.lp)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*carveSwayHz*t)
		sample := carveNoiseAmplitude * swell * g.lp * 4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CarveGenerator) Err() error {
	return nil
}

// CrashGenerator generates a decaying noise burst over a low rumble
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	rand noise
}

// NewCrashGenerator creates a crash sound generator
func NewCrashGenerator(sr beep.SampleRate) *CrashGenerator {
	return &CrashGenerator{sr: sr, rand: newNoise()}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * crashDecayRate)
		rumble := crashRumbleAmplitude * math.Sin(2*math.Pi*crashRumbleFrequencyHz*t)
		sample := envelope * (crashNoiseAmplitude*g.rand.next() + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
