package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// drain streams s to the end and returns the number of samples and the
// largest absolute sample value.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for _, v := range buf[j] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, Tone(440, 880, 100*time.Millisecond, w, rate))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", w, n, rate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %f out of range", w, peak)
		}
	}
}

func TestEnvelopeEndsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	env := Envelope(Tone(0, 0, d, WaveSquare, rate), d, 5*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 during attack", buf[0][0])
	}
	if v := buf[n-1][0]; v > 0.01 || v < -0.01 {
		t.Errorf("last sample = %f, want near 0 after release", v)
	}
	if buf[n/2][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[n/2][0])
	}
}

func TestEffectForEveryCue(t *testing.T) {
	cues := []core.Cue{core.CueHarvest, core.CueShot, core.CueEnemyDown, core.CuePickup, core.CuePlayerHit, core.CueStart}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			fx := Effect(c, SampleRate, 1)
			if fx == nil {
				t.Fatal("Effect() = nil")
			}
			n, peak := drain(t, fx)
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if n > SampleRate.N(time.Second) {
				t.Errorf("effect is %d samples, want under a second", n)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}
	if Effect(core.CueNone, SampleRate, 1) != nil {
		t.Error("Effect(CueNone) should be nil")
	}
}

func TestEffectZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Effect(core.CueShot, SampleRate, 0))
	if peak != 0 {
		t.Errorf("peak = %f, want 0", peak)
	}
}

func TestOpenDisabled(t *testing.T) {
	p, err := Open(false, 1)
	if err != nil {
		t.Fatalf("Open(false) error = %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Fatalf("Open(false) = %T, want Nop", p)
	}
	p.Play(core.CueShot)
	if !p.ToggleMute() {
		t.Error("Nop should always report muted")
	}
	p.Close()
}
