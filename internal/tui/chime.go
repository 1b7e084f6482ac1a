package tui

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	noteDuration = 120 * time.Millisecond
	noteGap      = 30 * time.Millisecond
	chimeVolume  = 0.3
)

// chimeNotes is a rising fifth then octave, played once per completion.
var chimeNotes = []float64{660, 990, 1320}

// Chime is the audible completion cue.
type Chime interface {
	Play()
	Close()
}

// NopChime is used when no audio device is available.
type NopChime struct{}

func (NopChime) Play()  {}
func (NopChime) Close() {}

// SpeakerChime plays short sine notes through the default audio device.
type SpeakerChime struct {
	mu     sync.Mutex
	closed bool
}

// NewSpeakerChime opens the audio device. Callers treat an error as
// "play silently" and fall back to NopChime.
func NewSpeakerChime() (*SpeakerChime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &SpeakerChime{}, nil
}

// Play queues the chime and returns immediately.
func (c *SpeakerChime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	s, err := chimeStreamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *SpeakerChime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	speaker.Close()
}

// chimeStreamer builds the note sequence with short silences between notes.
func chimeStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, 2*len(chimeNotes))
	for _, freq := range chimeNotes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts,
			scale(beep.Take(sr.N(noteDuration), tone), chimeVolume),
			beep.Silence(sr.N(noteGap)),
		)
	}
	return beep.Seq(parts...), nil
}

// scale multiplies every sample by gain.
func scale(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}
