package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveforms map a phase in [0, 1) to a sample in [-1, 1]
var waveforms = [...]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64) float64 { return 2*p - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// tone is one enveloped note of a cue
type tone struct {
	freq    float64
	length  time.Duration
	wave    WaveType
	attack  time.Duration
	release time.Duration
	level   float64 // Linear peak, 1 is full scale
}

// render returns a streamer playing the tone once at rate
func (t tone) render(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		shape:   waveforms[t.wave],
		step:    t.freq / float64(rate),
		level:   t.level,
		total:   rate.N(t.length),
		attack:  rate.N(t.attack),
		release: rate.N(t.release),
	}
}

type toneStreamer struct {
	shape func(float64) float64
	step  float64
	phase float64
	level float64

	played  int
	total   int
	attack  int
	release int
}

// envelope is the linear attack/release gain at sample i
func (s *toneStreamer) envelope(i int) float64 {
	if s.release > 0 && i >= s.total-s.release {
		return float64(s.total-i) / float64(s.release)
	}
	if s.attack > 0 && i < s.attack {
		return float64(i) / float64(s.attack)
	}
	return 1
}

func (s *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.played >= s.total {
		return 0, false
	}
	n := min(len(samples), s.total-s.played)
	for i := range n {
		v := s.shape(s.phase) * s.level * s.envelope(s.played)
		samples[i] = [2]float64{v, v}
		s.phase = math.Mod(s.phase+s.step, 1)
		s.played++
	}
	return n, true
}

func (s *toneStreamer) Err() error { return nil }
