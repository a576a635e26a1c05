package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker rate cues are synthesized at
	AudioSampleRate = 44100

	// SpeakerBuffer trades latency for underrun safety
	SpeakerBuffer = 100 * time.Millisecond
)

// Cue note timing
const (
	ChirpNoteDuration   = 60 * time.Millisecond
	SighNoteDuration    = 90 * time.Millisecond
	ArpeggioDuration    = 70 * time.Millisecond
	FanfareNoteDuration = 120 * time.Millisecond
	BumpDuration        = 60 * time.Millisecond
	CrushDuration       = 120 * time.Millisecond

	BellDuration         = 300 * time.Millisecond
	BellOvertoneRelease  = 150 * time.Millisecond
	BellFundamentalDecay = 280 * time.Millisecond

	NoteAttack  = 5 * time.Millisecond
	NoteRelease = 25 * time.Millisecond
)
