// Package audio synthesizes and plays short cues for game events
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fishgrid/constants"
)

// Cue is a sound tied to something that happened in a tick
type Cue int

const (
	CueNone Cue = iota
	CueFound
	CueLost
	CueHome
	CueHeart
	CueCrush
	CueBump
	CueVictory
)

var cueNames = [...]string{
	CueNone:    "none",
	CueFound:   "found",
	CueLost:    "lost",
	CueHome:    "home",
	CueHeart:   "heart",
	CueCrush:   "crush",
	CueBump:    "bump",
	CueVictory: "victory",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Note frequencies in Hz
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
	noteE6 = 1318.51
)

// arrangement is how a cue's tones combine
type arrangement struct {
	layered bool // Mix all tones at once instead of playing them in order
	tones   []tone
}

// plain builds a tone with the shared short attack and release
func plain(freq float64, length time.Duration, wave WaveType, level float64) tone {
	return tone{freq: freq, length: length, wave: wave, attack: constants.NoteAttack, release: constants.NoteRelease, level: level}
}

var arrangements = [...]arrangement{
	CueFound: {tones: []tone{
		plain(noteC6, constants.ChirpNoteDuration, WaveSine, 1),
		plain(noteE6, constants.ChirpNoteDuration, WaveSine, 1),
	}},
	CueLost: {tones: []tone{
		plain(noteE4, constants.SighNoteDuration, WaveSaw, 0.5),
		plain(noteC4, constants.SighNoteDuration, WaveSaw, 0.5),
	}},
	CueHome: {tones: []tone{
		plain(noteC5, constants.ArpeggioDuration, WaveSquare, 0.4),
		plain(noteE5, constants.ArpeggioDuration, WaveSquare, 0.4),
		plain(noteG5, constants.ArpeggioDuration, WaveSquare, 0.4),
	}},
	// Bell: fundamental with an octave overtone that dies first
	CueHeart: {layered: true, tones: []tone{
		{freq: noteA5, length: constants.BellDuration, wave: WaveSine, attack: constants.NoteAttack, release: constants.BellFundamentalDecay, level: 0.7},
		{freq: 2 * noteA5, length: constants.BellDuration, wave: WaveSine, attack: constants.NoteAttack, release: constants.BellOvertoneRelease, level: 0.3},
	}},
	CueCrush: {tones: []tone{
		{length: constants.CrushDuration, wave: WaveNoise, attack: constants.NoteAttack, release: constants.CrushDuration / 2, level: 0.5},
	}},
	CueBump: {tones: []tone{
		plain(100, constants.BumpDuration, WaveSaw, 0.3),
	}},
	CueVictory: {tones: []tone{
		plain(noteC5, constants.FanfareNoteDuration, WaveSquare, 0.4),
		plain(noteE5, constants.FanfareNoteDuration, WaveSquare, 0.4),
		plain(noteG5, constants.FanfareNoteDuration, WaveSquare, 0.4),
		{freq: noteC6, length: 2 * constants.FanfareNoteDuration, wave: WaveSquare, attack: constants.NoteAttack, release: constants.FanfareNoteDuration, level: 0.4},
	}},
}

// Synthesize builds the streamer for a cue
// volume is relative on a log2 scale: 0 leaves the cue unchanged, -1 halves it
// Returns nil for CueNone and unknown cues
func Synthesize(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	if c < 0 || int(c) >= len(arrangements) || len(arrangements[c].tones) == 0 {
		return nil
	}

	arr := arrangements[c]
	parts := make([]beep.Streamer, len(arr.tones))
	for i, t := range arr.tones {
		parts[i] = t.render(rate)
	}

	var s beep.Streamer
	if arr.layered {
		s = beep.Mix(parts...)
	} else {
		s = beep.Seq(parts...)
	}
	if volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}
