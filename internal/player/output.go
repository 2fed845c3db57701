package player

import (
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is the audio sink the engine plays into. The real implementation is
// the beep speaker; tests substitute a silent one.
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	// Lock must be held while touching streamers the output is pulling from.
	Lock()
	Unlock()
	Close()
}

// SpeakerOutput plays through the default audio device.
type SpeakerOutput struct{}

func (SpeakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

func (SpeakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (SpeakerOutput) Clear() { speaker.Clear() }

func (SpeakerOutput) Lock() { speaker.Lock() }

func (SpeakerOutput) Unlock() { speaker.Unlock() }

func (SpeakerOutput) Close() { speaker.Close() }
