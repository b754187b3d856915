package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// trackPatterns holds the bass lines the jukebox rotates through.
// Values are Hz; zero is a rest. Patterns share a length so the step
// clock stays uniform across rotations.
var trackPatterns = [][]float64{
	{110.00, 0, 164.81, 0, 130.81, 0, 164.81, 110.00}, // A minor groove
	{130.81, 0, 196.00, 0, 146.83, 0, 196.00, 130.81}, // C major walk
}

const (
	stepDuration   = 300 * time.Millisecond
	patternRepeats = 8 // pattern plays per track before rotating
)

// MusicGenerator streams an endless chiptune loop, rotating between
// patterns every few bars. Finite effects use beep.Take; music never
// ends, so the mixer keeps pulling from it.
type MusicGenerator struct {
	sr           beep.SampleRate
	pos          int
	stepSamples  int
	trackSamples int
}

// NewMusicGenerator creates the jukebox streamer.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	step := sr.N(stepDuration)
	return &MusicGenerator{
		sr:           sr,
		stepSamples:  step,
		trackSamples: step * len(trackPatterns[0]) * patternRepeats,
	}
}

// Track returns the index of the pattern currently playing.
func (g *MusicGenerator) Track() int {
	return (g.pos / g.trackSamples) % len(trackPatterns)
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		pattern := trackPatterns[(g.pos/g.trackSamples)%len(trackPatterns)]
		step := (g.pos / g.stepSamples) % len(pattern)
		freq := pattern[step]

		t := float64(g.pos%g.stepSamples) / float64(g.sr)

		sample := 0.0
		if freq > 0 {
			envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*6)
			sample += 0.12 * envelope * math.Sin(2*math.Pi*freq*t)
		}

		// Soft kick on the downbeats
		if step%4 == 0 {
			sample += 0.1 * math.Exp(-t*40) * math.Sin(2*math.Pi*55*t)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
