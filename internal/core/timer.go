package core

import "time"

// Timer is a countdown clock advanced by explicit elapsed-time samples.
// A repeating timer wraps around and keeps the overshoot; a one-shot timer
// stops at its duration and stays finished until Reset.
type Timer struct {
	duration  time.Duration
	elapsed   time.Duration
	repeating bool
	finished  bool
	fired     int // completions during the last Tick
}

// NewTimer creates a timer of the given duration.
func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{duration: d, repeating: repeating}
}

// NewFinishedTimer creates a one-shot timer that starts out expired.
// Useful for cooldowns that should allow the first action immediately.
func NewFinishedTimer(d time.Duration) Timer {
	return Timer{duration: d, elapsed: d, finished: true}
}

// Tick advances the timer by dt and returns how many times it completed.
func (t *Timer) Tick(dt time.Duration) int {
	t.fired = 0
	if dt <= 0 {
		return 0
	}
	if t.duration <= 0 {
		// Degenerate timer: completes once per tick.
		t.finished = true
		t.fired = 1
		return 1
	}

	if !t.repeating {
		if t.finished {
			return 0
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.fired = 1
		}
		return t.fired
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
		t.fired++
	}
	if t.fired > 0 {
		t.finished = true
	}
	return t.fired
}

// JustFinished reports whether the timer completed during the last Tick.
func (t *Timer) JustFinished() bool {
	return t.fired > 0
}

// Finished reports whether the timer has completed at least once since the last Reset.
func (t *Timer) Finished() bool {
	return t.finished
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return ClampF(float64(t.elapsed)/float64(t.duration), 0, 1)
}

// Remaining returns the time left until the next completion.
func (t *Timer) Remaining() time.Duration {
	if t.finished && !t.repeating {
		return 0
	}
	return t.duration - t.elapsed
}

// Duration returns the timer's period.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// SetDuration changes the period without touching elapsed time.
// A repeating timer that is already past the new period completes on the
// next Tick.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.fired = 0
}
