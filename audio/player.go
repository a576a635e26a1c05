package audio

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fishgrid/config"
	"github.com/lixenwraith/fishgrid/constants"
)

// Player plays cues without blocking the caller
type Player interface {
	Play(c Cue)
	Close()
}

// Noop is the silent player used when audio is disabled or unavailable
type Noop struct{}

func (Noop) Play(Cue) {}
func (Noop) Close()   {}

// SpeakerPlayer mixes cues onto the system speaker
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	closed bool
}

// NewSpeakerPlayer initializes the speaker and starts an empty mixer on it
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	p := &SpeakerPlayer{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play adds the cue to the mixer; overlapping cues are mixed
func (p *SpeakerPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	s := Synthesize(c, p.rate, p.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences pending cues and releases the speaker
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Open returns a speaker player for cfg, or Noop when audio is off or the speaker fails
func Open(cfg config.Audio, logger *slog.Logger) Player {
	if !cfg.Enabled {
		return Noop{}
	}

	p, err := NewSpeakerPlayer(cfg.Volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
		return Noop{}
	}
	return p
}
