package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// SampleRate is the output rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Player plays presentation cues.
type Player interface {
	Play(c core.Cue)
	// ToggleMute flips muting and reports the new state.
	ToggleMute() bool
	Close()
}

// Nop is a Player that never makes a sound.
type Nop struct{}

func (Nop) Play(core.Cue)    {}
func (Nop) ToggleMute() bool { return true }
func (Nop) Close()           {}

// Speaker plays cues on the default audio device. All cues share one
// mixer, so overlapping cues are summed.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	muted  bool
	closed bool
}

// NewSpeaker opens the audio device. On failure the caller should fall
// back to Nop.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cue's effect on the mixer.
func (s *Speaker) Play(c core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted || s.closed {
		return
	}
	fx := Effect(c, SampleRate, s.volume)
	if fx == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(fx)
	speaker.Unlock()
}

// ToggleMute flips muting. Muting drops cues that are still playing.
func (s *Speaker) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	if s.muted {
		speaker.Lock()
		s.mixer.Clear()
		speaker.Unlock()
	}
	return s.muted
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Open returns a speaker-backed Player, or Nop when sound is disabled.
// An error is returned alongside Nop if the device could not be opened.
func Open(enabled bool, volume float64) (Player, error) {
	if !enabled || volume <= 0 {
		return Nop{}, nil
	}
	s, err := NewSpeaker(volume)
	if err != nil {
		return Nop{}, err
	}
	return s, nil
}
