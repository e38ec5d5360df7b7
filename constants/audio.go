package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Effect Envelopes
const (
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 30 * time.Millisecond

	WallSoundDuration = 50 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 25 * time.Millisecond

	GoalSoundNoteDuration = 120 * time.Millisecond
	GoalSoundAttack       = 5 * time.Millisecond
	GoalSoundRelease      = 60 * time.Millisecond

	ToggleSoundDuration = 30 * time.Millisecond
	ToggleSoundAttack   = 1 * time.Millisecond
	ToggleSoundRelease  = 15 * time.Millisecond
)

// Effect Frequencies (Hz)
const (
	PaddleSoundFreq   = 880.0 // A5
	WallSoundFreq     = 440.0 // A4
	GoalSoundNote1    = 987.77
	GoalSoundNote2    = 659.25
	ToggleSoundFreq   = 1320.0
	EffectMasterLevel = 0.25
)
