// Package sound plays short synthesized cues through the system speaker.
// Every cue is generated from oscillators at play time; there are no
// asset files.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/harvest-defense/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator with a linear frequency slide.
type tone struct {
	from, to float64 // Hz
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	length   int
	rng      *rand.Rand
}

// Tone returns a streamer that plays one note sliding from one frequency
// to another over d.
func Tone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		from:   from,
		to:     to,
		wave:   wave,
		rate:   rate,
		length: rate.N(d),
		rng:    rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = -1
			if t.phase < 0.5 {
				v = 1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		frac := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*frac
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// Envelope shapes s, which is expected to last d.
func Envelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales a stream linearly; 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped tone with a short attack and a release over the last
// half of its length.
func note(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return Envelope(Tone(from, to, d, wave, rate), d, 3*time.Millisecond, d/2, rate)
}

// Effect builds the streamer for a cue. It returns nil for CueNone and
// unknown cues.
func Effect(c core.Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueHarvest:
		// Soft blip
		s = withVolume(note(660, 720, 40*time.Millisecond, WaveSine, rate), 0.4)
	case core.CueShot:
		// Click
		s = withVolume(note(1200, 300, 30*time.Millisecond, WaveSquare, rate), 0.3)
	case core.CueEnemyDown:
		s = withVolume(note(400, 1400, 90*time.Millisecond, WaveSaw, rate), 0.4)
	case core.CuePickup:
		// A major arpeggio
		s = beep.Seq(
			note(880, 880, 50*time.Millisecond, WaveSquare, rate),
			note(1108.73, 1108.73, 50*time.Millisecond, WaveSquare, rate),
			note(1318.51, 1318.51, 80*time.Millisecond, WaveSquare, rate),
		)
		s = withVolume(s, 0.35)
	case core.CuePlayerHit:
		s = beep.Mix(
			note(110, 70, 350*time.Millisecond, WaveSaw, rate),
			withVolume(note(0, 0, 200*time.Millisecond, WaveNoise, rate), 0.5),
		)
	case core.CueStart:
		s = beep.Seq(
			note(523.25, 523.25, 70*time.Millisecond, WaveSine, rate),
			note(783.99, 783.99, 110*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return withVolume(s, vol)
}
